package main

import "cityscape/internal/render"

func main() {
	render.RunDesktop()
}
