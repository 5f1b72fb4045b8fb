package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher 监听场景配置文件变化并重新加载
//
// 监听的是文件所在目录（编辑器保存时常常先写临时文件再重命名），
// 只处理目标文件名的写入/创建事件。解析成功的新配置通过 Updates() 发送；
// 帧循环每帧非阻塞地轮询一次，保证核心仍然是单线程的。
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan *SceneConfig
	done    chan struct{}
}

// NewWatcher 创建配置监听器并开始监听
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *Watcher: 监听器，使用完毕后必须调用 Close
//   - error: 无法创建 fsnotify 监听时返回错误
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		updates: make(chan *SceneConfig, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Updates 返回新配置的通道（容量为 1，只保留最新一次）
func (w *Watcher) Updates() <-chan *SceneConfig { return w.updates }

// Close 停止监听
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadSceneConfig(w.path)
			if err != nil {
				log.Printf("[ConfigWatcher] Reload failed, keeping current config: %v", err)
				continue
			}
			log.Printf("[ConfigWatcher] Reloaded %s", w.path)
			w.publish(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[ConfigWatcher] Error: %v", err)
		}
	}
}

// publish 丢弃尚未被消费的旧配置，只保留最新的
func (w *Watcher) publish(cfg *SceneConfig) {
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- cfg:
	default:
	}
}
