// scrolltrace - 离线回放滚动轨迹
//
// 读取关键帧列表 [{t, offset}]，以固定帧率驱动场景，
// 把采样到的帧以 YAML 输出到标准输出（或 --out 指定的文件）。
//
// 用法:
//
//	go run ./cmd/scrolltrace --trace scroll.yaml --fps 60 --every 10 > frames.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/scrollscene/internal/trace"
	"github.com/gonewx/scrollscene/pkg/config"
	"gopkg.in/yaml.v3"
)

func main() {
	configPath := flag.String("config", "", "场景配置文件 (.yaml/.toml)")
	tracePath := flag.String("trace", "", "滚动轨迹文件（必填）")
	fps := flag.Float64("fps", 60, "模拟帧率")
	every := flag.Int("every", 1, "每隔多少帧输出一次")
	tail := flag.Float64("tail", 1, "轨迹结束后继续模拟的秒数")
	out := flag.String("out", "", "输出文件，默认标准输出")
	verbose := flag.Bool("verbose", false, "启用详细日志")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if *tracePath == "" {
		fmt.Fprintln(os.Stderr, "缺少 --trace 参数")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configPath, *tracePath, *out, trace.Options{FPS: *fps, Every: *every, Tail: *tail}); err != nil {
		fmt.Fprintf(os.Stderr, "scrolltrace: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, tracePath, outPath string, opts trace.Options) error {
	cfg := config.DefaultSceneConfig()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadSceneConfig(configPath); err != nil {
			return err
		}
	}

	tr, err := trace.Load(tracePath)
	if err != nil {
		return err
	}
	report, err := trace.Replay(cfg, tr, opts)
	if err != nil {
		return err
	}

	if outPath == "" {
		return writeReport(os.Stdout, report)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	if err := writeReport(f, report); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", outPath, err)
	}
	return nil
}

// writeReport 以 YAML 写出回放结果
func writeReport(w io.Writer, report *trace.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode frames: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush frames: %w", err)
	}
	return nil
}
