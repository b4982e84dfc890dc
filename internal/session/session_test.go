package session

import (
	"testing"
	"time"

	"campusboard/internal/testutils"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	rdb := testutils.SetupTestRedis(t)
	if rdb == nil {
		t.Skip("Redis not available, skipping session tests")
	}
	return NewStore(rdb, time.Hour)
}

// TestSessionLifecycle 会话创建、读取、销毁
func TestSessionLifecycle(t *testing.T) {
	store := setupStore(t)

	data := Data{UserID: 42, Name: "Sofia", Email: "sofia@example.com", UserType: "Student"}
	token, err := store.Create(data)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if token == "" {
		t.Fatal("Empty session token")
	}

	got, err := store.Get(token)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.UserID != data.UserID || got.Name != data.Name || got.Email != data.Email {
		t.Errorf("Get = %+v, want %+v", got, data)
	}

	if err := store.Destroy(token); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	if _, err := store.Get(token); err == nil {
		t.Error("Session still readable after destroy")
	}
}

// TestSessionRefresh 资料更新后会话数据同步
func TestSessionRefresh(t *testing.T) {
	store := setupStore(t)

	token, err := store.Create(Data{UserID: 7, Name: "Old", Email: "old@example.com"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Refresh(token, Data{
		UserID: 7, Name: "New", Email: "new@example.com", UserType: "Teacher",
	}); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	got, err := store.Get(token)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "New" || got.Email != "new@example.com" || got.UserType != "Teacher" {
		t.Errorf("Refreshed data = %+v", got)
	}
}

// TestFlashOneShot 闪现消息读一次即消失
func TestFlashOneShot(t *testing.T) {
	store := setupStore(t)

	token, err := store.Create(Data{UserID: 1, Name: "x", Email: "x@example.com"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if flash := store.PopFlash(token); flash != nil {
		t.Errorf("PopFlash on empty = %+v, want nil", flash)
	}

	if err := store.SetFlash(token, "success", "Todo added"); err != nil {
		t.Fatalf("SetFlash failed: %v", err)
	}

	flash := store.PopFlash(token)
	if flash == nil {
		t.Fatal("PopFlash = nil, want message")
	}
	if flash.Kind != "success" || flash.Message != "Todo added" {
		t.Errorf("Flash = %+v", flash)
	}

	// 第二次读取为空
	if flash := store.PopFlash(token); flash != nil {
		t.Errorf("Second PopFlash = %+v, want nil", flash)
	}
}
