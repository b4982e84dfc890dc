package post

import (
	"fmt"
	"testing"

	channelModel "campusboard/internal/model/channel"
	"campusboard/internal/response"
	"campusboard/internal/testutils"
)

// TestPostCreate_Integration 集成测试：发帖与校验
func TestPostCreate_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db)

	author := testutils.CreateTestUser(db)
	ch := testutils.CreateTestChannel(db, author.ID)

	tests := []struct {
		name        string
		req         CreateRequest
		wantErrors  int
		wantBizCode *response.ResponseCode
	}{
		{
			name: "发帖成功",
			req:  CreateRequest{ChannelID: ch.ID, Title: "Hello", Content: "First post"},
		},
		{
			name:       "标题与内容为空",
			req:        CreateRequest{ChannelID: ch.ID, Title: " ", Content: ""},
			wantErrors: 2,
		},
		{
			name:        "频道不存在",
			req:         CreateRequest{ChannelID: 99999, Title: "Hello", Content: "x"},
			wantBizCode: codePtr(response.NotFound),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, bizErr := service.Create(author.ID, tt.req)

			if tt.wantBizCode != nil {
				if bizErr == nil || bizErr.Code != *tt.wantBizCode {
					t.Fatalf("Create = %v, want code %v", bizErr, *tt.wantBizCode)
				}
				return
			}
			if bizErr != nil {
				t.Fatalf("Unexpected error: %v", bizErr)
			}

			if tt.wantErrors > 0 {
				if result.Form == nil || len(result.Form.Errors) != tt.wantErrors {
					t.Fatalf("Form = %+v, want %d errors", result.Form, tt.wantErrors)
				}
				var count int64
				db.Model(&channelModel.Post{}).Where("channel_id = ? AND title = ?",
					tt.req.ChannelID, tt.req.Title).Count(&count)
				if count != 0 {
					t.Error("Invalid post was persisted")
				}
				return
			}

			if result.Flash != "Post added" {
				t.Errorf("Flash = %q, want %q", result.Flash, "Post added")
			}
			var saved channelModel.Post
			if err := db.Where("channel_id = ? AND title = ?", ch.ID, tt.req.Title).
				First(&saved).Error; err != nil {
				t.Fatalf("Post not found in database: %v", err)
			}
			want := fmt.Sprintf("/post/%d", saved.ID)
			if result.RedirectURL != want {
				t.Errorf("RedirectURL = %q, want %q", result.RedirectURL, want)
			}
		})
	}
}

// TestPostDetail_Integration 集成测试：详情、评论与 same_user 标记
func TestPostDetail_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db)

	author := testutils.CreateTestUser(db)
	commenter := testutils.CreateTestUser(db)
	ch := testutils.CreateTestChannel(db, author.ID)
	p := testutils.CreateTestPost(db, ch.ID, author.ID)
	testutils.CreateTestComment(db, p.ID, author.ID)
	testutils.CreateTestComment(db, p.ID, commenter.ID)

	result, bizErr := service.Detail(p.ID, commenter.ID)
	if bizErr != nil {
		t.Fatalf("Unexpected error: %v", bizErr)
	}

	if result.SameUser {
		t.Error("same_user = true for non-author viewer")
	}
	if result.Post.Channel == nil || result.Post.Author == nil {
		t.Error("Post missing channel/author preload")
	}
	if len(result.Comments) != 2 {
		t.Fatalf("Detail has %d comments, want 2", len(result.Comments))
	}
	for _, cm := range result.Comments {
		if cm.Author == nil {
			t.Errorf("Comment %d missing author preload", cm.ID)
		}
		wantSame := cm.AuthorID == commenter.ID
		if cm.SameUser != wantSame {
			t.Errorf("Comment %d same_user = %v, want %v", cm.ID, cm.SameUser, wantSame)
		}
	}

	if _, bizErr := service.Detail(99999, commenter.ID); bizErr == nil ||
		bizErr.Code != response.NotFound {
		t.Errorf("Detail(99999) = %v, want NotFound", bizErr)
	}
}

// TestPostEdit_Integration 集成测试：编辑限作者
func TestPostEdit_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db)

	author := testutils.CreateTestUser(db)
	intruder := testutils.CreateTestUser(db)
	ch := testutils.CreateTestChannel(db, author.ID)
	p := testutils.CreateTestPost(db, ch.ID, author.ID)

	t.Run("非作者取编辑页按不存在处理", func(t *testing.T) {
		_, bizErr := service.GetForEdit(p.ID, intruder.ID)
		if bizErr == nil || bizErr.Code != response.NotFound {
			t.Errorf("GetForEdit by intruder = %v, want NotFound", bizErr)
		}
	})

	t.Run("非作者更新按不存在处理", func(t *testing.T) {
		_, bizErr := service.Update(p.ID, intruder.ID, EditRequest{
			Title: "hijacked", Content: "hijacked",
		})
		if bizErr == nil || bizErr.Code != response.NotFound {
			t.Fatalf("Update by intruder = %v, want NotFound", bizErr)
		}

		var unchanged channelModel.Post
		db.First(&unchanged, p.ID)
		if unchanged.Title == "hijacked" {
			t.Error("Non-author update went through")
		}
	})

	t.Run("作者更新成功", func(t *testing.T) {
		result, bizErr := service.Update(p.ID, author.ID, EditRequest{
			Title: "edited", Content: "edited content",
		})
		if bizErr != nil {
			t.Fatalf("Unexpected error: %v", bizErr)
		}
		if result.Flash != "Post edited" {
			t.Errorf("Flash = %q, want %q", result.Flash, "Post edited")
		}

		var updated channelModel.Post
		db.First(&updated, p.ID)
		if updated.Title != "edited" {
			t.Errorf("Title = %q, want %q", updated.Title, "edited")
		}
	})
}

// TestPostDelete_Integration 集成测试：删除限作者并级联评论
func TestPostDelete_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewPostService(db)

	author := testutils.CreateTestUser(db)
	intruder := testutils.CreateTestUser(db)
	ch := testutils.CreateTestChannel(db, author.ID)
	p := testutils.CreateTestPost(db, ch.ID, author.ID)
	testutils.CreateTestComment(db, p.ID, intruder.ID)

	otherPost := testutils.CreateTestPost(db, ch.ID, author.ID)
	otherComment := testutils.CreateTestComment(db, otherPost.ID, author.ID)

	t.Run("非作者删除被拒绝", func(t *testing.T) {
		_, bizErr := service.Delete(p.ID, intruder.ID)
		if bizErr == nil || bizErr.Code != response.NotFound {
			t.Fatalf("Delete by intruder = %v, want NotFound", bizErr)
		}

		var count int64
		db.Model(&channelModel.Post{}).Where("id = ?", p.ID).Count(&count)
		if count != 1 {
			t.Error("Post deleted by non-author")
		}
		db.Model(&channelModel.Comment{}).Where("post_id = ?", p.ID).Count(&count)
		if count != 1 {
			t.Error("Comments removed by rejected delete")
		}
	})

	t.Run("作者删除并清空评论", func(t *testing.T) {
		result, bizErr := service.Delete(p.ID, author.ID)
		if bizErr != nil {
			t.Fatalf("Unexpected error: %v", bizErr)
		}
		if result.Flash != "Post deleted" {
			t.Errorf("Flash = %q, want %q", result.Flash, "Post deleted")
		}
		want := fmt.Sprintf("/channel/%d", ch.ID)
		if result.RedirectURL != want {
			t.Errorf("RedirectURL = %q, want %q", result.RedirectURL, want)
		}

		var count int64
		db.Model(&channelModel.Post{}).Where("id = ?", p.ID).Count(&count)
		if count != 0 {
			t.Error("Post still present")
		}
		db.Model(&channelModel.Comment{}).Where("post_id = ?", p.ID).Count(&count)
		if count != 0 {
			t.Error("Orphan comments left behind")
		}

		// 同频道其他帖子不受影响
		db.Model(&channelModel.Comment{}).Where("id = ?", otherComment.ID).Count(&count)
		if count != 1 {
			t.Error("Unrelated comment was deleted")
		}
	})
}

func codePtr(c response.ResponseCode) *response.ResponseCode {
	return &c
}
