package flags

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"engipec/global"
	"engipec/service/kv_ser"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StateExport 把底座上的全部固定键导出为JSON文件
func StateExport(c *cli.Context) error {
	timer := time.Now().Format("20060102")
	path := fmt.Sprintf("./engipec_state_%s.json", timer)

	var mu sync.Mutex
	state := make(map[string]string)

	var g errgroup.Group
	for _, key := range kv_ser.Keys() {
		key := key
		g.Go(func() error {
			raw, ok, err := substrate.Get(key)
			if err != nil {
				return fmt.Errorf("读取键%s失败: %w", key, err)
			}
			if !ok {
				return nil
			}
			mu.Lock()
			state[key] = raw
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		global.Log.Error("导出底座状态失败", zap.String("error", err.Error()))
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		global.Log.Error("写入导出文件失败", zap.String("path", path), zap.String("error", err.Error()))
		return err
	}

	global.Log.Info("底座状态导出成功", zap.String("path", path), zap.Int("keys", len(state)))
	return nil
}

// StateImport 从JSON文件恢复底座状态
func StateImport(c *cli.Context) error {
	path := c.String("path")
	if path == "" {
		return fmt.Errorf("必须通过--path指定导入文件")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		global.Log.Error("读取导入文件失败", zap.String("path", path), zap.String("error", err.Error()))
		return err
	}

	var state map[string]string
	if err := json.Unmarshal(data, &state); err != nil {
		global.Log.Error("解析导入文件失败", zap.String("path", path), zap.String("error", err.Error()))
		return err
	}

	var g errgroup.Group
	for key, value := range state {
		key, value := key, value
		g.Go(func() error {
			if err := substrate.Set(key, value); err != nil {
				return fmt.Errorf("写入键%s失败: %w", key, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		global.Log.Error("导入底座状态失败", zap.String("error", err.Error()))
		return err
	}

	global.Log.Info("底座状态导入成功", zap.String("path", path), zap.Int("keys", len(state)))
	return nil
}
