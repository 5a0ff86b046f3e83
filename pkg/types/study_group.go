// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// StudyGroup 玩家所属的研究分组
type StudyGroup int

const (
	// StudyGroupNone 尚未分组
	StudyGroupNone StudyGroup = iota
	// StudyGroupIngroup 内群组
	StudyGroupIngroup
	// StudyGroupOutgroup 外群组
	StudyGroupOutgroup
)

// String 返回分组的字符串表示
func (g StudyGroup) String() string {
	switch g {
	case StudyGroupIngroup:
		return "Ingroup"
	case StudyGroupOutgroup:
		return "Outgroup"
	default:
		return "None"
	}
}
