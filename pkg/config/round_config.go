package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// RoundConfigPath 默认回合配置文件
const RoundConfigPath = "data/round_config.yaml"

// 回合配置键
const (
	// KeyPlayableOutgroup 为 true 时教学在任务 8 之后追加"切换到外群组"任务
	KeyPlayableOutgroup = "playable_outgroup"
)

// RoundConfig 回合配置（只读映射）
// 保留原始 YAML 映射，读取时再做类型检查，缺失或类型错误的键按零值处理
type RoundConfig map[string]any

// ParseRoundConfig 从 YAML 数据解析回合配置
// 空数据返回空配置；只有 YAML 语法错误才返回错误
func ParseRoundConfig(data []byte) (RoundConfig, error) {
	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse round config YAML: %w", err)
	}

	cfg := RoundConfig(raw)
	validateRoundConfig(cfg)
	return cfg, nil
}

// LoadRoundConfig 从YAML文件加载回合配置
// 参数：
//
//	filepath - 回合配置文件路径
//
// 返回：
//
//	RoundConfig - 解析后的配置
//	error - 文件读取或解析失败
func LoadRoundConfig(filepath string) (RoundConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read round config file %s: %w", filepath, err)
	}

	cfg, err := ParseRoundConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid round config in %s: %w", filepath, err)
	}
	return cfg, nil
}

// GetBool 读取布尔选项，键缺失或不是布尔值时返回 false
func (c RoundConfig) GetBool(key string) bool {
	v, ok := c[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// PlayableOutgroup 是否启用外群组可玩分支
func (c RoundConfig) PlayableOutgroup() bool {
	return c.GetBool(KeyPlayableOutgroup)
}

// validateRoundConfig 检查教学关心的键，类型错误只警告不报错
func validateRoundConfig(cfg RoundConfig) {
	if v, ok := cfg[KeyPlayableOutgroup]; ok {
		if _, isBool := v.(bool); !isBool {
			log.Printf("[RoundConfig] Warning: %s should be a bool, got %T (treated as false)", KeyPlayableOutgroup, v)
		}
	}
}
