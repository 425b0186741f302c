package main

import (
	"log/slog"
	"os"
	"time"

	"gitlab.com/greyxor/slogor"

	"github.com/jethrobull/touchboard/cmd/touchboard"
	"github.com/jethrobull/touchboard/logging"
)

func main() {
	slog.SetDefault(slog.New(logging.ContextHandler{
		Handler: slogor.NewHandler(os.Stderr,
			slogor.SetLevel(slog.LevelInfo),
			slogor.SetTimeFormat(time.DateTime)),
	}))

	touchboard.Execute()
}
