// Command shortestpath runs Dijkstra's algorithm over a small weighted
// graph built from command-line-free, hard-coded edges, backed by an
// indexed radix heap frontier.
package main

import (
	"flag"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/galactixx/radixheap/graph"
)

func newLogger(logPath string) *zap.Logger {
	if logPath == "" {
		logger, _ := zap.NewProduction()
		return logger
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	}
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(writer), zap.InfoLevel)
	return zap.New(core)
}

func main() {
	logPath := flag.String("log-file", "", "path to rotate logs to (stderr if empty)")
	source := flag.Int("source", 0, "source node")
	flag.Parse()

	logger := newLogger(*logPath)
	defer logger.Sync()

	runID := graph.RunID()
	logger.Info("starting shortest-path run", zap.String("run_id", runID), zap.Int("source", *source))

	g := graph.New(6)
	edges := [][3]int{
		{0, 1, 7}, {0, 2, 9}, {0, 5, 14},
		{1, 2, 10}, {1, 3, 15},
		{2, 3, 11}, {2, 5, 2},
		{3, 4, 6},
		{4, 5, 9},
	}
	for _, e := range edges {
		if err := g.AddUndirectedEdge(e[0], e[1], uint64(e[2])); err != nil {
			logger.Error("failed to add edge", zap.Error(err))
			os.Exit(1)
		}
	}

	dist, prev, err := graph.ShortestPaths(g, *source)
	if err != nil {
		logger.Error("shortest-path run failed", zap.String("run_id", runID), zap.Error(err))
		os.Exit(1)
	}

	for node := 0; node < g.Nodes(); node++ {
		path := graph.PathTo(prev, *source, node)
		logger.Info("distance computed",
			zap.String("run_id", runID),
			zap.Int("node", node),
			zap.Uint64("distance", dist[node]),
			zap.Ints("path", path))
	}
}
