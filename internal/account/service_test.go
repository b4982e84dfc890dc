package account

import (
	"testing"

	userModel "campusboard/internal/model/user"
	"campusboard/internal/response"
	"campusboard/internal/testutils"
)

// TestDashboard_Integration 集成测试：主页只取本人最新 10 条
func TestDashboard_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewAccountService(db)

	owner := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)

	for i := 0; i < 12; i++ {
		testutils.CreateTestTodo(db, owner.ID)
	}
	testutils.CreateTestNote(db, owner.ID)
	testutils.CreateTestTodo(db, other.ID)

	result, bizErr := service.Dashboard(owner.ID, owner.Name)
	if bizErr != nil {
		t.Fatalf("Unexpected error: %v", bizErr)
	}

	if len(result.Todos) != 10 {
		t.Errorf("Dashboard has %d todos, want 10", len(result.Todos))
	}
	if len(result.Notes) != 1 {
		t.Errorf("Dashboard has %d notes, want 1", len(result.Notes))
	}
	for _, td := range result.Todos {
		if td.UserID != owner.ID {
			t.Errorf("Todo %d belongs to user %d, want %d", td.ID, td.UserID, owner.ID)
		}
	}
	if result.Name != owner.Name {
		t.Errorf("Name = %q, want %q", result.Name, owner.Name)
	}
}

// TestDirectorySearch_Integration 集成测试：目录与姓名检索
func TestDirectorySearch_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewAccountService(db)

	testutils.CreateTestUser(db, testutils.WithName("Ada Lovelace"))
	testutils.CreateTestUser(db, testutils.WithName("Grace Hopper"))

	t.Run("目录包含全部用户", func(t *testing.T) {
		result, bizErr := service.Directory()
		if bizErr != nil {
			t.Fatalf("Unexpected error: %v", bizErr)
		}
		if len(result.Users) < 2 {
			t.Errorf("Directory has %d users, want >= 2", len(result.Users))
		}
	})

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "整句命中", query: "ada lovelace", want: 1},
		{name: "单词命中", query: "Grace", want: 1},
		{name: "子串不命中", query: "Love", want: 0},
		{name: "无命中", query: "Turing", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, bizErr := service.SearchUsers(tt.query)
			if bizErr != nil {
				t.Fatalf("Unexpected error: %v", bizErr)
			}
			if len(result.Users) != tt.want {
				t.Errorf("SearchUsers(%q) = %d users, want %d", tt.query, len(result.Users), tt.want)
			}
		})
	}
}

// TestDirectoryFilter_Integration 集成测试：目录筛选与 All 哨兵
func TestDirectoryFilter_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewAccountService(db)

	testutils.CreateTestUser(db,
		testutils.WithUserType(userModel.TypeTeacher),
		testutils.WithCampus("Berlin"))
	testutils.CreateTestUser(db,
		testutils.WithUserType(userModel.TypeStudent),
		testutils.WithCampus("Berlin"),
		testutils.WithStudyTime("Full Time"))
	testutils.CreateTestUser(db,
		testutils.WithUserType(userModel.TypeStudent),
		testutils.WithCampus("Lisbon"))

	tests := []struct {
		name string
		req  FilterRequest
		want int
	}{
		{
			name: "按角色",
			req:  FilterRequest{UserType: userModel.TypeTeacher, Campus: "All"},
			want: 1,
		},
		{
			name: "按校区",
			req:  FilterRequest{UserType: "All", Campus: "Berlin"},
			want: 2,
		},
		{
			name: "组合条件",
			req:  FilterRequest{UserType: userModel.TypeStudent, Campus: "Berlin", StudyTime: "Full Time"},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, bizErr := service.Filter(tt.req)
			if bizErr != nil {
				t.Fatalf("Unexpected error: %v", bizErr)
			}
			if len(result.Users) != tt.want {
				t.Errorf("Filter(%+v) = %d users, want %d", tt.req, len(result.Users), tt.want)
			}
		})
	}

	t.Run("全部为 All 等于不过滤", func(t *testing.T) {
		result, bizErr := service.Filter(FilterRequest{
			UserType: "All", StudyTime: "All", Campus: "All", Cohort: "All",
		})
		if bizErr != nil {
			t.Fatalf("Unexpected error: %v", bizErr)
		}
		if len(result.Users) < 3 {
			t.Errorf("Filter(All) = %d users, want >= 3", len(result.Users))
		}
	})
}

// TestUpdateProfile_Integration 集成测试：资料更新
func TestUpdateProfile_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewAccountService(db)

	u := testutils.CreateTestUser(db)
	other := testutils.CreateTestUser(db)

	t.Run("更新成功", func(t *testing.T) {
		updated, bizErr := service.UpdateProfile(u.ID, ProfileRequest{
			Name:      "New Name",
			Email:     u.Email,
			UserType:  userModel.TypeTeacherAssistant,
			Phone:     "12345",
			Campus:    "Berlin",
			Cohort:    "2026",
			StudyTime: "Part Time",
		})
		if bizErr != nil {
			t.Fatalf("Unexpected error: %v", bizErr)
		}
		if updated.Name != "New Name" || updated.Campus != "Berlin" {
			t.Errorf("Updated user = %+v", updated)
		}

		var fromDB userModel.User
		db.First(&fromDB, u.ID)
		if fromDB.UserType != userModel.TypeTeacherAssistant {
			t.Errorf("UserType = %q, want %q", fromDB.UserType, userModel.TypeTeacherAssistant)
		}
	})

	t.Run("占用他人邮箱被拒绝", func(t *testing.T) {
		_, bizErr := service.UpdateProfile(u.ID, ProfileRequest{
			Name:  "New Name",
			Email: other.Email,
		})
		if bizErr == nil || bizErr.Code != response.Duplicate {
			t.Errorf("UpdateProfile with taken email = %v, want Duplicate", bizErr)
		}
	})

	t.Run("无效角色被拒绝", func(t *testing.T) {
		_, bizErr := service.UpdateProfile(u.ID, ProfileRequest{
			Name:     "New Name",
			Email:    u.Email,
			UserType: "Janitor",
		})
		if bizErr == nil || bizErr.Code != response.InvalidParameter {
			t.Errorf("UpdateProfile with bad usertype = %v, want InvalidParameter", bizErr)
		}
	})
}
