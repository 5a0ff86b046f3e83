package systems

import (
	"log"
	"unicode/utf8"

	"github.com/decker502/onboarding/pkg/components"
	"github.com/decker502/onboarding/pkg/config"
	"github.com/decker502/onboarding/pkg/ecs"
)

// DialogueState 对话子系统的显示状态
type DialogueState int

const (
	// DialogueIdle 没有任何对话框
	DialogueIdle DialogueState = iota
	// DialogueDisplaying 至少有一个对话框在队列中（队首正在显示）
	DialogueDisplaying
)

// String 返回 DialogueState 的字符串表示
func (s DialogueState) String() string {
	if s == DialogueDisplaying {
		return "Displaying"
	}
	return "Idle"
}

// DialogueController 教学系统使用的对话子系统能力接口
// 教学系统只依赖这些操作，不关心队列的内部表示
type DialogueController interface {
	// OpenDialogue 把对话条目加入队列，显示在 (x, y)
	OpenDialogue(key string, x, y float64)
	// Advance 关闭当前显示的对话框
	Advance()
	// PurgeQueue 清空所有对话框
	PurgeQueue()
	// State 当前是否有对话框在显示
	State() DialogueState
	// CurrentEntryFinishedAdvancing 当前对话框的文本是否已全部显示
	// 没有对话框时返回 false
	CurrentEntryFinishedAdvancing() bool
}

// DialogueSystem 对话框队列系统
//
// 职责：
//   - 维护对话框实体队列，只有队首对话框显示
//   - 按固定速度逐字显示文本（打字机效果）
//   - 响应 Advance / PurgeQueue / SkipAnimation
type DialogueSystem struct {
	entityManager  *ecs.EntityManager
	texts          config.DialogueTexts
	charsPerSecond float64

	// queue 对话框实体，按打开顺序排列
	queue []ecs.EntityID
}

// NewDialogueSystem 创建对话系统
//
// 参数：
//   - em: EntityManager 实例
//   - texts: 对话文本，可为 nil（显示 "[KEY]"）
func NewDialogueSystem(em *ecs.EntityManager, texts config.DialogueTexts) *DialogueSystem {
	log.Printf("[DialogueSystem] Initialized with %d texts", len(texts))
	return &DialogueSystem{
		entityManager:  em,
		texts:          texts,
		charsPerSecond: config.TextboxCharsPerSecond,
		queue:          make([]ecs.EntityID, 0),
	}
}

// SetCharsPerSecond 设置打字机速度，<= 0 表示立即显示全部文本
func (s *DialogueSystem) SetCharsPerSecond(cps float64) {
	s.charsPerSecond = cps
}

// OpenDialogue 创建对话框实体并加入队列
func (s *DialogueSystem) OpenDialogue(key string, x, y float64) {
	id := s.entityManager.CreateEntity()
	textbox := &components.TextboxComponent{
		Key:  key,
		Text: s.texts.Text(key),
		X:    x,
		Y:    y,
	}
	if s.charsPerSecond <= 0 {
		s.reveal(textbox)
	}
	ecs.AddComponent(s.entityManager, id, textbox)
	s.queue = append(s.queue, id)

	log.Printf("[DialogueSystem] Opened textbox %q at (%.0f, %.0f), queue length %d", key, x, y, len(s.queue))
}

// Advance 关闭队首对话框
func (s *DialogueSystem) Advance() {
	if len(s.queue) == 0 {
		return
	}
	front := s.queue[0]
	key := ""
	if textbox, ok := ecs.GetComponent[*components.TextboxComponent](s.entityManager, front); ok {
		key = textbox.Key
	}
	s.entityManager.DestroyEntity(front)
	s.queue = s.queue[1:]

	log.Printf("[DialogueSystem] Advanced past %q, queue length %d", key, len(s.queue))
}

// PurgeQueue 关闭所有对话框
func (s *DialogueSystem) PurgeQueue() {
	for _, id := range s.queue {
		s.entityManager.DestroyEntity(id)
	}
	count := len(s.queue)
	s.queue = s.queue[:0]

	log.Printf("[DialogueSystem] Purged %d textboxes", count)
}

// State 返回当前显示状态
func (s *DialogueSystem) State() DialogueState {
	if len(s.queue) == 0 {
		return DialogueIdle
	}
	return DialogueDisplaying
}

// CurrentEntryFinishedAdvancing 队首对话框文本是否已全部显示
func (s *DialogueSystem) CurrentEntryFinishedAdvancing() bool {
	textbox, ok := s.Current()
	return ok && textbox.FinishedAdvancing
}

// Current 返回队首对话框
func (s *DialogueSystem) Current() (*components.TextboxComponent, bool) {
	if len(s.queue) == 0 {
		return nil, false
	}
	return ecs.GetComponent[*components.TextboxComponent](s.entityManager, s.queue[0])
}

// QueueLength 队列中的对话框数量
func (s *DialogueSystem) QueueLength() int {
	return len(s.queue)
}

// VisibleText 队首对话框当前已显示的文本
func (s *DialogueSystem) VisibleText() string {
	textbox, ok := s.Current()
	if !ok {
		return ""
	}
	if textbox.FinishedAdvancing {
		return textbox.Text
	}
	runes := []rune(textbox.Text)
	n := int(textbox.Revealed)
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n])
}

// SkipAnimation 立即显示队首对话框的全部文本
func (s *DialogueSystem) SkipAnimation() {
	if textbox, ok := s.Current(); ok && !textbox.FinishedAdvancing {
		s.reveal(textbox)
	}
}

// Update 推进队首对话框的打字机效果
// 参数：
//   - dt: 时间增量（秒）
func (s *DialogueSystem) Update(dt float64) {
	textbox, ok := s.Current()
	if !ok || textbox.FinishedAdvancing {
		return
	}

	textbox.Revealed += dt * s.charsPerSecond
	if int(textbox.Revealed) >= utf8.RuneCountInString(textbox.Text) {
		s.reveal(textbox)
	}
}

// reveal 标记对话框文本全部显示
func (s *DialogueSystem) reveal(textbox *components.TextboxComponent) {
	textbox.Revealed = float64(utf8.RuneCountInString(textbox.Text))
	textbox.FinishedAdvancing = true
}
