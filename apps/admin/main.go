package main

import (
	"fmt"
	"log"
	"os"

	"github.com/campushub/portal/core"
	"github.com/campushub/portal/core/housing"
	logsvc "github.com/campushub/portal/services/logger"
	sentimentsvc "github.com/campushub/portal/services/sentiment"
	corpusdb "github.com/campushub/portal/storage/corpus"
)

var logger core.Logger

func main() {
	defer os.Exit(0)

	logger = logsvc.NewConsoleLogger(
		log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
	)

	conf := core.NewConfig()
	corpusRepo := corpusdb.NewFileRepository(conf.Housing.CorpusPath)

	// start CLI
	cli := commandLine{
		corpusRepo: corpusRepo,
		housingSvc: housing.NewService(corpusRepo, sentimentsvc.NewVaderScorer(), conf),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("error: %s", err), err)
		}
		os.Exit(1)
	}
}
