package config

import (
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// DefaultLanguage 默认文本语言
const DefaultLanguage = "en"

// DialogueTexts 对话条目键 -> 文本
type DialogueTexts map[string]string

// DialogueTextPath 返回指定语言的教学文本文件路径
// 例如 "data/textboxes/en/tutorial.yaml"
func DialogueTextPath(lang string) string {
	if lang == "" {
		lang = DefaultLanguage
	}
	return path.Join("data", "textboxes", lang, "tutorial.yaml")
}

// ParseDialogueTexts 从 YAML 数据解析对话文本
//
// 文件格式：
//
//	Basic_movement: "Use WASD to walk around."
//	Farm_tile: "Equip the hoe and till a tile."
func ParseDialogueTexts(data []byte) (DialogueTexts, error) {
	texts := make(DialogueTexts)
	if err := yaml.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("failed to parse dialogue texts YAML: %w", err)
	}
	for key, text := range texts {
		if text == "" {
			return nil, fmt.Errorf("dialogue entry %q has empty text", key)
		}
	}
	return texts, nil
}

// LoadDialogueTexts 从文件加载对话文本
func LoadDialogueTexts(filepath string) (DialogueTexts, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialogue texts file %s: %w", filepath, err)
	}
	texts, err := ParseDialogueTexts(data)
	if err != nil {
		return nil, fmt.Errorf("invalid dialogue texts in %s: %w", filepath, err)
	}
	return texts, nil
}

// Text 根据键获取文本，未找到时返回 "[KEY]"（调试用）
func (t DialogueTexts) Text(key string) string {
	if text, ok := t[key]; ok {
		return text
	}
	return "[" + key + "]"
}
