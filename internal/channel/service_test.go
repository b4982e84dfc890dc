package channel

import (
	"fmt"
	"testing"

	channelModel "campusboard/internal/model/channel"
	"campusboard/internal/response"
	"campusboard/internal/testutils"
)

// TestChannelFeed_Integration 集成测试：首页帖子流及评论数
func TestChannelFeed_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewChannelService(db)

	author := testutils.CreateTestUser(db)
	ch := testutils.CreateTestChannel(db, author.ID)
	p1 := testutils.CreateTestPost(db, ch.ID, author.ID)
	p2 := testutils.CreateTestPost(db, ch.ID, author.ID)

	testutils.CreateTestComment(db, p1.ID, author.ID)
	testutils.CreateTestComment(db, p1.ID, author.ID)
	testutils.CreateTestComment(db, p2.ID, author.ID)

	result, bizErr := service.Feed()
	if bizErr != nil {
		t.Fatalf("Unexpected error: %v", bizErr)
	}

	if len(result.PopularChannels) == 0 {
		t.Error("Feed has no channels")
	}
	if len(result.Posts) != 2 {
		t.Fatalf("Feed has %d posts, want 2", len(result.Posts))
	}

	// 倒序：后发的帖子在前
	if result.Posts[0].ID != p2.ID {
		t.Errorf("First post = %d, want %d", result.Posts[0].ID, p2.ID)
	}

	counts := map[uint]int64{}
	for _, p := range result.Posts {
		counts[p.ID] = p.CommentsCount
		if p.Channel == nil || p.Author == nil {
			t.Errorf("Post %d missing channel/author preload", p.ID)
		}
	}
	if counts[p1.ID] != 2 || counts[p2.ID] != 1 {
		t.Errorf("Comment counts = %v, want {%d:2 %d:1}", counts, p1.ID, p2.ID)
	}
}

// TestChannelSearch_Integration 集成测试：帖子标题与频道名称检索
func TestChannelSearch_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewChannelService(db)

	author := testutils.CreateTestUser(db)
	ch := testutils.CreateTestChannel(db, author.ID, testutils.WithChannelName("Golang"))
	testutils.CreateTestPost(db, ch.ID, author.ID, testutils.WithPostTitle("Generics explained"))

	t.Run("帖子标题命中", func(t *testing.T) {
		result, bizErr := service.SearchPosts("generics")
		if bizErr != nil {
			t.Fatalf("Unexpected error: %v", bizErr)
		}
		if len(result.Posts) != 1 || result.SearchNothing {
			t.Errorf("SearchPosts = %d posts, search_nothing=%v", len(result.Posts), result.SearchNothing)
		}
	})

	t.Run("帖子无命中时置标记", func(t *testing.T) {
		result, bizErr := service.SearchPosts("nonexistent")
		if bizErr != nil {
			t.Fatalf("Unexpected error: %v", bizErr)
		}
		if len(result.Posts) != 0 || !result.SearchNothing {
			t.Errorf("SearchPosts = %d posts, search_nothing=%v, want 0/true",
				len(result.Posts), result.SearchNothing)
		}
	})

	t.Run("频道名称命中", func(t *testing.T) {
		result, bizErr := service.SearchChannels("golang")
		if bizErr != nil {
			t.Fatalf("Unexpected error: %v", bizErr)
		}
		if len(result.AllChannels) != 1 {
			t.Errorf("SearchChannels = %d channels, want 1", len(result.AllChannels))
		}
	})
}

// TestChannelDetail_Integration 集成测试：详情与 same_user 标记
func TestChannelDetail_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewChannelService(db)

	author := testutils.CreateTestUser(db)
	visitor := testutils.CreateTestUser(db)
	ch := testutils.CreateTestChannel(db, author.ID)
	testutils.CreateTestPost(db, ch.ID, author.ID)

	t.Run("作者访问", func(t *testing.T) {
		result, bizErr := service.Detail(ch.ID, author.ID)
		if bizErr != nil {
			t.Fatalf("Unexpected error: %v", bizErr)
		}
		if !result.SameUser {
			t.Error("same_user = false for author")
		}
		if len(result.Posts) != 1 {
			t.Errorf("Detail has %d posts, want 1", len(result.Posts))
		}
	})

	t.Run("访客访问", func(t *testing.T) {
		result, bizErr := service.Detail(ch.ID, visitor.ID)
		if bizErr != nil {
			t.Fatalf("Unexpected error: %v", bizErr)
		}
		if result.SameUser {
			t.Error("same_user = true for visitor")
		}
	})

	t.Run("频道不存在", func(t *testing.T) {
		_, bizErr := service.Detail(99999, author.ID)
		if bizErr == nil || bizErr.Code != response.NotFound {
			t.Errorf("Detail(99999) = %v, want NotFound", bizErr)
		}
	})
}

// TestChannelDelete_Integration 集成测试：级联删除与作者限定
func TestChannelDelete_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewChannelService(db)

	author := testutils.CreateTestUser(db)
	intruder := testutils.CreateTestUser(db)

	ch := testutils.CreateTestChannel(db, author.ID)
	p := testutils.CreateTestPost(db, ch.ID, author.ID)
	testutils.CreateTestComment(db, p.ID, author.ID)

	// 另一个频道不受影响
	otherCh := testutils.CreateTestChannel(db, author.ID)
	otherPost := testutils.CreateTestPost(db, otherCh.ID, author.ID)
	otherComment := testutils.CreateTestComment(db, otherPost.ID, author.ID)

	t.Run("非作者删除被拒绝", func(t *testing.T) {
		_, bizErr := service.Delete(ch.ID, intruder.ID)
		if bizErr == nil || bizErr.Code != response.NotFound {
			t.Fatalf("Delete by intruder = %v, want NotFound", bizErr)
		}

		var count int64
		db.Model(&channelModel.Channel{}).Where("id = ?", ch.ID).Count(&count)
		if count != 1 {
			t.Error("Channel deleted by non-author")
		}
		db.Model(&channelModel.Post{}).Where("channel_id = ?", ch.ID).Count(&count)
		if count != 1 {
			t.Error("Posts removed by rejected delete")
		}
	})

	t.Run("作者删除级联清空", func(t *testing.T) {
		result, bizErr := service.Delete(ch.ID, author.ID)
		if bizErr != nil {
			t.Fatalf("Unexpected error: %v", bizErr)
		}
		if result.Flash != "Channel removed" {
			t.Errorf("Flash = %q, want %q", result.Flash, "Channel removed")
		}

		var count int64
		db.Model(&channelModel.Channel{}).Where("id = ?", ch.ID).Count(&count)
		if count != 0 {
			t.Error("Channel still present")
		}
		db.Model(&channelModel.Post{}).Where("channel_id = ?", ch.ID).Count(&count)
		if count != 0 {
			t.Error("Orphan posts left behind")
		}
		db.Model(&channelModel.Comment{}).Where("post_id = ?", p.ID).Count(&count)
		if count != 0 {
			t.Error("Orphan comments left behind")
		}

		// 其他频道的数据完好
		db.Model(&channelModel.Post{}).Where("id = ?", otherPost.ID).Count(&count)
		if count != 1 {
			t.Error("Unrelated post was deleted")
		}
		db.Model(&channelModel.Comment{}).Where("id = ?", otherComment.ID).Count(&count)
		if count != 1 {
			t.Error("Unrelated comment was deleted")
		}
	})
}

// TestChannelCreate_Integration 集成测试：创建后跳转详情
func TestChannelCreate_Integration(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := NewChannelService(db)

	author := testutils.CreateTestUser(db)

	result, bizErr := service.Create(author.ID, &CreateChannelRequest{Name: "Study group"})
	if bizErr != nil {
		t.Fatalf("Unexpected error: %v", bizErr)
	}
	if result.Flash != "Channel added" {
		t.Errorf("Flash = %q, want %q", result.Flash, "Channel added")
	}

	var saved channelModel.Channel
	if err := db.Where("name = ? AND author_id = ?", "Study group", author.ID).
		First(&saved).Error; err != nil {
		t.Fatalf("Channel not found in database: %v", err)
	}
	want := fmt.Sprintf("/channel/%d", saved.ID)
	if result.RedirectURL != want {
		t.Errorf("RedirectURL = %q, want %q", result.RedirectURL, want)
	}
}
