package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/campushub/portal/core/housing"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	corpusRepo housing.Repository
	housingSvc housing.ServiceInterface
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  recommend -sleep ANSWER -social ANSWER -noise ANSWER - score all dorms against quiz answers")
	fmt.Println("  checkcorpus - load the housing corpus and report its size")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	recommendCmd := flag.NewFlagSet("recommend", flag.ExitOnError)
	recommendSleep := recommendCmd.String("sleep", "", "Sleep schedule answer, eg. \"Night owl\".")
	recommendSocial := recommendCmd.String("social", "", "Sociability answer, eg. \"Very social\".")
	recommendNoise := recommendCmd.String("noise", "", "Noise tolerance answer, eg. \"Prefer quiet\".")

	switch args[1] {
	case "recommend":
		if err := recommendCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *recommendSleep == "" && *recommendSocial == "" && *recommendNoise == "" {
			recommendCmd.Usage()
			return errHelp
		}
		return cli.recommend(*recommendSleep, *recommendSocial, *recommendNoise)
	case "checkcorpus":
		return cli.checkCorpus()
	default:
		cli.printUsage()
		return errHelp
	}
}
