package todo

import (
	"testing"

	todoModel "campusboard/internal/model/todo"
	"campusboard/internal/response"
	"campusboard/internal/testutils"
)

// TestTodoList_Integration 集成测试：列表只含本人数据且按创建时间倒序
func TestTodoList_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTodoService(db)

	owner := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)

	first := testutils.CreateTestTodo(db, owner.ID, testutils.WithTodoTitle("first"))
	second := testutils.CreateTestTodo(db, owner.ID, testutils.WithTodoTitle("second"))
	testutils.CreateTestTodo(db, other.ID, testutils.WithTodoTitle("not mine"))

	todos, bizErr := service.List(owner.ID)
	if bizErr != nil {
		t.Fatalf("Unexpected error: %v", bizErr)
	}
	if len(todos) != 2 {
		t.Fatalf("List length = %d, want 2", len(todos))
	}
	for _, td := range todos {
		if td.UserID != owner.ID {
			t.Errorf("Todo %d belongs to user %d, want %d", td.ID, td.UserID, owner.ID)
		}
	}
	// 倒序：后创建的在前
	if todos[0].ID != second.ID || todos[1].ID != first.ID {
		t.Errorf("List order = [%d %d], want [%d %d]",
			todos[0].ID, todos[1].ID, second.ID, first.ID)
	}
}

// TestTodoCreate_Integration 集成测试：创建与校验
func TestTodoCreate_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTodoService(db)

	owner := testutils.CreateTestUser(db)

	tests := []struct {
		name       string
		req        TodoRequest
		wantErrors []string
		wantSaved  bool
	}{
		{
			name:      "创建成功并写入默认状态",
			req:       TodoRequest{Title: "Buy milk", Details: "2 liters"},
			wantSaved: true,
		},
		{
			name:       "标题为空",
			req:        TodoRequest{Title: "  ", Details: "something"},
			wantErrors: []string{"Please add title"},
		},
		{
			name:       "详情为空",
			req:        TodoRequest{Title: "something", Details: ""},
			wantErrors: []string{"Please add some details"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, bizErr := service.Create(owner.ID, tt.req)
			if bizErr != nil {
				t.Fatalf("Unexpected error: %v", bizErr)
			}

			if len(tt.wantErrors) > 0 {
				if result.Form == nil {
					t.Fatalf("Form is nil, want errors %v", tt.wantErrors)
				}
				if len(result.Form.Errors) != len(tt.wantErrors) {
					t.Errorf("Form errors = %v, want %v", result.Form.Errors, tt.wantErrors)
				}
				// 回显输入
				if result.Form.Title != tt.req.Title {
					t.Errorf("Echoed title = %q, want %q", result.Form.Title, tt.req.Title)
				}
				// 不落库
				var count int64
				db.Model(&todoModel.Todo{}).Where("user_id = ? AND title = ?",
					owner.ID, tt.req.Title).Count(&count)
				if count != 0 {
					t.Errorf("Invalid todo was persisted")
				}
				return
			}

			if result.Flash != "Todo added" {
				t.Errorf("Flash = %q, want %q", result.Flash, "Todo added")
			}
			var saved todoModel.Todo
			if err := db.Where("user_id = ? AND title = ?", owner.ID, tt.req.Title).
				First(&saved).Error; err != nil {
				t.Fatalf("Todo not found in database: %v", err)
			}
			if saved.Status != todoModel.StatusInProgress {
				t.Errorf("Status = %q, want %q", saved.Status, todoModel.StatusInProgress)
			}
		})
	}
}

// TestTodoOwnership_Integration 集成测试：非所有者的读改删
func TestTodoOwnership_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTodoService(db)

	owner := testutils.CreateTestUser(db)
	intruder := testutils.CreateTestUser(db)
	td := testutils.CreateTestTodo(db, owner.ID)

	t.Run("非所有者进入编辑页被拒绝", func(t *testing.T) {
		_, bizErr := service.GetForEdit(td.ID, intruder.ID)
		if bizErr == nil {
			t.Fatal("Expected error but got nil")
		}
		if bizErr.Code != response.Forbidden {
			t.Errorf("Code = %v, want Forbidden", bizErr.Code)
		}
		if bizErr.Msg != "Not authorized" {
			t.Errorf("Msg = %q, want %q", bizErr.Msg, "Not authorized")
		}
	})

	t.Run("非所有者更新按不存在处理", func(t *testing.T) {
		_, bizErr := service.Update(td.ID, intruder.ID, TodoRequest{
			Title: "hijacked", Details: "hijacked",
		})
		if bizErr == nil || bizErr.Code != response.NotFound {
			t.Fatalf("Expected NotFound, got %v", bizErr)
		}

		var unchanged todoModel.Todo
		db.First(&unchanged, td.ID)
		if unchanged.Title == "hijacked" {
			t.Error("Non-owner update went through")
		}
	})

	t.Run("非所有者删除按不存在处理", func(t *testing.T) {
		_, bizErr := service.Delete(td.ID, intruder.ID)
		if bizErr == nil || bizErr.Code != response.NotFound {
			t.Fatalf("Expected NotFound, got %v", bizErr)
		}

		var count int64
		db.Model(&todoModel.Todo{}).Where("id = ?", td.ID).Count(&count)
		if count != 1 {
			t.Error("Todo was deleted by non-owner")
		}
	})

	t.Run("所有者更新与删除", func(t *testing.T) {
		result, bizErr := service.Update(td.ID, owner.ID, TodoRequest{
			Title: "updated", Details: "updated", Status: todoModel.StatusCompleted,
		})
		if bizErr != nil {
			t.Fatalf("Unexpected error: %v", bizErr)
		}
		if result.Flash != "Todo updated" {
			t.Errorf("Flash = %q, want %q", result.Flash, "Todo updated")
		}

		var updated todoModel.Todo
		db.First(&updated, td.ID)
		if updated.Status != todoModel.StatusCompleted {
			t.Errorf("Status = %q, want %q", updated.Status, todoModel.StatusCompleted)
		}

		if _, bizErr := service.Delete(td.ID, owner.ID); bizErr != nil {
			t.Fatalf("Unexpected error: %v", bizErr)
		}
		var count int64
		db.Model(&todoModel.Todo{}).Where("id = ?", td.ID).Count(&count)
		if count != 0 {
			t.Error("Todo still present after owner delete")
		}
	})
}

// TestTodoSearch_Integration 集成测试：标题检索
func TestTodoSearch_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewTodoService(db)

	owner := testutils.CreateTestUser(db)
	testutils.CreateTestTodo(db, owner.ID, testutils.WithTodoTitle("Buy milk"))
	testutils.CreateTestTodo(db, owner.ID, testutils.WithTodoTitle("Call mum"))

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "整句命中", query: "buy milk", want: 1},
		{name: "单词命中", query: "Milk", want: 1},
		{name: "子串不命中", query: "mil", want: 0},
		{name: "无命中", query: "laundry", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todos, bizErr := service.Search(owner.ID, tt.query)
			if bizErr != nil {
				t.Fatalf("Unexpected error: %v", bizErr)
			}
			if len(todos) != tt.want {
				t.Errorf("Search(%q) = %d results, want %d", tt.query, len(todos), tt.want)
			}
		})
	}
}
