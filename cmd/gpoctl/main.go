package main

func main() {
	initLogging()
	execute()
}
