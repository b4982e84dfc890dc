package testutils

import (
	"fmt"
	"time"

	channelModel "campusboard/internal/model/channel"
	noteModel "campusboard/internal/model/note"
	todoModel "campusboard/internal/model/todo"
	userModel "campusboard/internal/model/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateTestUser creates a test user with unique name/email
func CreateTestUser(db *gorm.DB, opts ...UserOption) *userModel.User {
	uniqueID := uuid.New().String()

	testUser := &userModel.User{
		Name:         fmt.Sprintf("test_user_%s", uniqueID),
		Email:        fmt.Sprintf("test_%s@example.com", uniqueID),
		PasswordHash: "x",
		UserType:     userModel.TypeStudent,
		CreatedAt:    time.Now(),
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*userModel.User)

// WithName sets the name
func WithName(name string) UserOption {
	return func(u *userModel.User) {
		u.Name = name
	}
}

// WithEmail sets the email
func WithEmail(email string) UserOption {
	return func(u *userModel.User) {
		u.Email = email
	}
}

// WithUserType sets the role
func WithUserType(userType string) UserOption {
	return func(u *userModel.User) {
		u.UserType = userType
	}
}

// WithCampus sets the campus
func WithCampus(campus string) UserOption {
	return func(u *userModel.User) {
		u.Campus = campus
	}
}

// WithStudyTime sets the study time
func WithStudyTime(studyTime string) UserOption {
	return func(u *userModel.User) {
		u.StudyTime = studyTime
	}
}

// WithPassword sets the password, stored bcrypt-hashed
func WithPassword(plain string) UserOption {
	return func(u *userModel.User) {
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			panic(fmt.Sprintf("Failed to hash test password: %v", err))
		}
		u.PasswordHash = string(hash)
	}
}

// CreateTestTodo creates a todo owned by the given user
func CreateTestTodo(db *gorm.DB, userID uint, opts ...TodoOption) *todoModel.Todo {
	testTodo := &todoModel.Todo{
		Title:   fmt.Sprintf("test_todo_%s", uuid.New().String()),
		Details: "Test todo details",
		Status:  todoModel.StatusInProgress,
		UserID:  userID,
	}

	for _, opt := range opts {
		opt(testTodo)
	}

	if err := db.Create(testTodo).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test todo: %v", err))
	}

	return testTodo
}

// TodoOption configures test todo
type TodoOption func(*todoModel.Todo)

// WithTodoTitle sets the title
func WithTodoTitle(title string) TodoOption {
	return func(td *todoModel.Todo) {
		td.Title = title
	}
}

// WithTodoStatus sets the status
func WithTodoStatus(status string) TodoOption {
	return func(td *todoModel.Todo) {
		td.Status = status
	}
}

// CreateTestNote creates a note owned by the given user
func CreateTestNote(db *gorm.DB, userID uint, opts ...NoteOption) *noteModel.Note {
	testNote := &noteModel.Note{
		Title:   fmt.Sprintf("test_note_%s", uuid.New().String()),
		Details: "Test note details",
		UserID:  userID,
	}

	for _, opt := range opts {
		opt(testNote)
	}

	if err := db.Create(testNote).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test note: %v", err))
	}

	return testNote
}

// NoteOption configures test note
type NoteOption func(*noteModel.Note)

// WithNoteTitle sets the title
func WithNoteTitle(title string) NoteOption {
	return func(n *noteModel.Note) {
		n.Title = title
	}
}

// CreateTestChannel creates a channel authored by the given user
func CreateTestChannel(db *gorm.DB, authorID uint, opts ...ChannelOption) *channelModel.Channel {
	testChannel := &channelModel.Channel{
		Name:     fmt.Sprintf("test_channel_%s", uuid.New().String()),
		AuthorID: authorID,
	}

	for _, opt := range opts {
		opt(testChannel)
	}

	if err := db.Create(testChannel).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test channel: %v", err))
	}

	return testChannel
}

// ChannelOption configures test channel
type ChannelOption func(*channelModel.Channel)

// WithChannelName sets the channel name
func WithChannelName(name string) ChannelOption {
	return func(ch *channelModel.Channel) {
		ch.Name = name
	}
}

// CreateTestPost creates a post in the given channel
func CreateTestPost(db *gorm.DB, channelID, authorID uint, opts ...PostOption) *channelModel.Post {
	testPost := &channelModel.Post{
		Title:     fmt.Sprintf("test_post_%s", uuid.New().String()),
		Content:   "Test post content",
		ChannelID: channelID,
		AuthorID:  authorID,
	}

	for _, opt := range opts {
		opt(testPost)
	}

	if err := db.Create(testPost).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test post: %v", err))
	}

	return testPost
}

// PostOption configures test post
type PostOption func(*channelModel.Post)

// WithPostTitle sets the post title
func WithPostTitle(title string) PostOption {
	return func(p *channelModel.Post) {
		p.Title = title
	}
}

// CreateTestComment creates a comment on the given post
func CreateTestComment(db *gorm.DB, postID, authorID uint, opts ...CommentOption) *channelModel.Comment {
	testComment := &channelModel.Comment{
		Content:  fmt.Sprintf("test_comment_%s", uuid.New().String()),
		PostID:   postID,
		AuthorID: authorID,
	}

	for _, opt := range opts {
		opt(testComment)
	}

	if err := db.Create(testComment).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test comment: %v", err))
	}

	return testComment
}

// CommentOption configures test comment
type CommentOption func(*channelModel.Comment)

// WithCommentContent sets the comment content
func WithCommentContent(content string) CommentOption {
	return func(cm *channelModel.Comment) {
		cm.Content = content
	}
}
