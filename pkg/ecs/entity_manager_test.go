package ecs

import "testing"

// 测试组件类型定义
type testFlagComponent struct {
	Set bool
}

type testCounterComponent struct {
	N int
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	// ID从1开始，0保留为无效ID
	if id1 != 1 || id2 != 2 {
		t.Errorf("Expected IDs 1 and 2, got %d and %d", id1, id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testFlagComponent{Set: true})

	comp, ok := GetComponent[*testFlagComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if !comp.Set {
		t.Error("Component data mismatch")
	}

	if _, ok := GetComponent[*testCounterComponent](em, id); ok {
		t.Error("Unrelated component type should not be found")
	}
}

func TestComponentIsShared(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testCounterComponent{})

	// 组件以指针保存，修改后再次获取应看到新值
	comp, _ := GetComponent[*testCounterComponent](em, id)
	comp.N = 7

	again, _ := GetComponent[*testCounterComponent](em, id)
	if again.N != 7 {
		t.Errorf("Expected N=7, got %d", again.N)
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testFlagComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if _, ok := GetComponent[*testFlagComponent](em, id); !em.Exists(id) || !ok {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.EntityCount())
	}
}
