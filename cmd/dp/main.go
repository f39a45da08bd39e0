package main

import "github.com/kezhick/Depooper/cmd/dp/root"

func main() {
	root.Execute()
}
