// scenebridge - 场景帧 WebSocket 服务
//
// 浏览器渲染端连接 /ws，每帧发送 {offset, delta, elapsed, width, height}，
// 收到计算好的 Frame（JSON）。
//
// 用法:
//
//	go run ./cmd/scenebridge --addr :8090 --config scene.yaml --verbose
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gonewx/scrollscene/pkg/bridge"
	"github.com/gonewx/scrollscene/pkg/config"
	"github.com/gonewx/scrollscene/pkg/embedded"
)

func main() {
	addr := flag.String("addr", ":8090", "监听地址")
	configPath := flag.String("config", "", "场景配置文件 (.yaml/.toml)")
	preset := flag.String("preset", "", "内置预设名（优先于 --config）")
	verbose := flag.Bool("verbose", false, "启用详细日志")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(*preset, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	srv := bridge.NewServer(cfg)
	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// WebSocket 连接已被劫持，Shutdown 不会等待它们
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[Bridge] Shutdown: %v", err)
		}
	}()

	fmt.Printf("scenebridge listening on %s\n", *addr)
	log.Printf("[Bridge] Listening on %s", *addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "服务失败: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(preset, path string) (*config.SceneConfig, error) {
	switch {
	case preset != "":
		data, ext, err := embedded.ReadPreset(preset)
		if err != nil {
			return nil, err
		}
		return config.ParseSceneConfig(data, ext)
	case path != "":
		return config.LoadSceneConfig(path)
	default:
		return config.DefaultSceneConfig(), nil
	}
}
