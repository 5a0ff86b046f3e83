package components

// LevelComponent 农场世界状态组件
// 由关卡模拟在事件发生时置位，教学系统只读
type LevelComponent struct {
	// TileFarmed 是否有地块被锄过
	TileFarmed bool

	// CropPlanted 每个地块是否种下了作物
	CropPlanted []bool

	// CropWatered 是否给作物浇过水
	CropWatered bool

	// HitTree 是否砍过树
	HitTree bool
}
