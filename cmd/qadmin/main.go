package main

import "github.com/SalimElheni1/quran-association-manager-sub001/internal/cli"

func main() {
	cli.Execute()
}
