package main

import (
	"github.com/chess-vn/tierank/internal/app/classifier"
	"github.com/chess-vn/tierank/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	defer logging.Sync()
	cmd := classifier.NewCommand("medal", "Show the medal a hero earns at a given experience level")
	if err := cmd.Execute(); err != nil {
		logging.Fatal("Medal classifier exited: ", zap.Error(err))
	}
}
