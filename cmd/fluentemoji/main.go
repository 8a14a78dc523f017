package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"golang.org/x/term"

	"fluentemoji"
	"fluentemoji/utils"
)

const HelpBanner = `
┌─┐┬  ┬ ┬┌─┐┌┐┌┌┬┐┌─┐┌┬┐┌─┐ ┬┬
├┤ │  │ │├┤ │││ │ ├┤ ││││ │ ││
└  ┴─┘└─┘└─┘┘└┘ ┴ └─┘┴ ┴└─┘└┘┴

Fluent Emoji web asset build pipeline.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	skipFetch = flag.Bool("skip-fetch", false, "Reuse an existing source checkout instead of cloning a fresh one")
	repoURL   = flag.String("repo", fluentemoji.DefaultRepoURL, "Upstream repository URL")
	source    = flag.String("source", fluentemoji.DefaultSourceDir, "Local checkout directory of the upstream repository")
	outDir    = flag.String("out", ".", "Output directory of the produced assets")
	batchSize = flag.Int("batch", fluentemoji.DefaultBatchSize, "Number of icons per worker process")
	quality   = flag.Int("quality", fluentemoji.DefaultQuality, "Lossy WebP encoding quality")
	worker    = flag.Bool("worker", false, "Run as a batch worker (internal)")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if !term.IsTerminal(int(os.Stderr.Fd())) {
		utils.NoColor = true
	}

	cfg := &fluentemoji.Config{
		RepoURL:   *repoURL,
		SourceDir: *source,
		OutDir:    *outDir,
		BatchSize: *batchSize,
		Quality:   float32(*quality),
		SkipFetch: *skipFetch,
	}

	if *worker {
		runWorker(cfg)
		return
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ FLUENTEMOJI", utils.StatusMessage),
		utils.DecorateText("is fetching the upstream source...", utils.DefaultMessage))

	b := &fluentemoji.Builder{
		Config:  cfg,
		Spinner: utils.NewSpinner(spinnerText, time.Millisecond*200),
	}

	now := time.Now()
	count, err := b.Run()
	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to build the emoji assets: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	fmt.Fprintf(os.Stderr, "\nProduced %s entries\nExecution time: %s\n",
		utils.DecorateText(strconv.Itoa(count), utils.SuccessMessage),
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
	)
}

// runWorker executes a single batch in worker mode. The batch index and the
// icon range are passed as three positional integers after the flags; this is
// an internal protocol between the orchestrator and its worker processes.
func runWorker(cfg *fluentemoji.Config) {
	args := flag.Args()
	if len(args) != 3 {
		log.Fatalf(utils.DecorateText("worker mode expects: batch start end", utils.ErrorMessage))
	}

	nums := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			log.Fatalf(utils.DecorateText("invalid worker argument %q", utils.ErrorMessage), arg)
		}
		nums[i] = n
	}

	if err := fluentemoji.RunBatch(cfg, nums[0], nums[1], nums[2]); err != nil {
		log.Fatalf(
			utils.DecorateText("batch %d failed: %v", utils.ErrorMessage),
			nums[0], utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
}
