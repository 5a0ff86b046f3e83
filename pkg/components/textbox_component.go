package components

// TextboxComponent 对话框组件
// 一个实体对应队列中的一个对话框，只有队首对话框会被显示和推进
type TextboxComponent struct {
	// Key 对话条目键（如 "Basic_movement"）
	Key string

	// Text 要显示的完整文本
	Text string

	// X, Y 对话框左上角的屏幕坐标
	X, Y float64

	// Revealed 已显示的字符数（打字机效果，允许小数累积）
	Revealed float64

	// FinishedAdvancing 文本是否已全部显示
	FinishedAdvancing bool
}
