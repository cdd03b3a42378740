package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hbacademy/hbtrack"
)

func main() {
	hbtrack.WriteSignature(os.Stdout)

	cfgSetup := hbtrack.NewConfigFromFlag()
	flag.Usage = hbtrack.Usage
	flag.Parse()

	cfg := cfgSetup()
	if err := cfg.Main(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
