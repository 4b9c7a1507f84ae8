package main

import (
	"github.com/chess-vn/tierank/internal/app/classifier"
	"github.com/chess-vn/tierank/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	defer logging.Sync()
	cmd := classifier.NewCommand("ranking", "Show the rank earned by wins minus losses")
	if err := cmd.Execute(); err != nil {
		logging.Fatal("Ranking calculator exited: ", zap.Error(err))
	}
}
