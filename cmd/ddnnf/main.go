// Copyright (c) 2024
//
// MIT License

package main

func main() {
	Execute()
}
