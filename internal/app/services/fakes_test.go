package services_test

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/clubeativo/backend/internal/app/models"
	"github.com/clubeativo/backend/internal/pkg/apperrors"
)

// In-memory repository fakes mirroring the error semantics of the
// postgres implementations.

type pair struct{ a, b int64 }

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User)}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, existing := range r.users {
		if existing.StudentID == user.StudentID {
			return 0, apperrors.ErrStudentIDExists
		}
		if existing.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	r.nextID++
	stored := *user
	stored.ID = r.nextID
	if stored.ImageFile == "" {
		stored.ImageFile = models.DefaultProfileImage
	}
	stored.CreatedAt = time.Now()
	r.users[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetUserByStudentID(_ context.Context, studentID string) (*models.User, error) {
	for _, user := range r.users {
		if user.StudentID == studentID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) StudentIDExists(_ context.Context, studentID string) (bool, error) {
	for _, user := range r.users {
		if user.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) UpdateImageFile(_ context.Context, userID int64, imageFile string) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.ImageFile = imageFile
	return nil
}

type storedToken struct {
	userID     int64
	expiryDate time.Time
	isRevoked  bool
}

type fakeTokenRepo struct {
	tokens map[string]*storedToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*storedToken)}
}

func (r *fakeTokenRepo) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	r.tokens[token] = &storedToken{userID: userID, expiryDate: expiryDate}
	return nil
}

func (r *fakeTokenRepo) GetTokenByValue(_ context.Context, token string) (int64, time.Time, bool, error) {
	stored, ok := r.tokens[token]
	if !ok {
		return 0, time.Time{}, false, apperrors.ErrTokenNotFound
	}
	return stored.userID, stored.expiryDate, stored.isRevoked, nil
}

func (r *fakeTokenRepo) RevokeToken(_ context.Context, token string) error {
	stored, ok := r.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	stored.isRevoked = true
	return nil
}

type fakeClubRepo struct {
	clubs  map[int64]*models.Club
	nextID int64
}

func newFakeClubRepo() *fakeClubRepo {
	return &fakeClubRepo{clubs: make(map[int64]*models.Club)}
}

func (r *fakeClubRepo) Create(_ context.Context, club *models.Club) (int64, error) {
	for _, existing := range r.clubs {
		if existing.Name == club.Name {
			return 0, apperrors.ErrClubAlreadyExists
		}
	}
	r.nextID++
	stored := *club
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.clubs[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeClubRepo) GetByID(_ context.Context, id int64) (*models.Club, error) {
	club, ok := r.clubs[id]
	if !ok {
		return nil, apperrors.ErrClubNotFound
	}
	copied := *club
	return &copied, nil
}

func (r *fakeClubRepo) GetAll(_ context.Context, category, search *string, offset uint64, limit int) ([]*models.Club, error) {
	matched := r.filter(category, search)
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	if int(offset) >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeClubRepo) Count(_ context.Context, category, search *string) (int64, error) {
	return int64(len(r.filter(category, search))), nil
}

func (r *fakeClubRepo) filter(category, search *string) []*models.Club {
	var matched []*models.Club
	for _, club := range r.clubs {
		if category != nil && club.Category != *category {
			continue
		}
		if search != nil && !strings.Contains(strings.ToLower(club.Name), strings.ToLower(*search)) {
			continue
		}
		copied := *club
		matched = append(matched, &copied)
	}
	return matched
}

func (r *fakeClubRepo) GetByIDs(_ context.Context, ids []int64) ([]*models.Club, error) {
	var clubs []*models.Club
	for _, id := range ids {
		if club, ok := r.clubs[id]; ok {
			copied := *club
			clubs = append(clubs, &copied)
		}
	}
	return clubs, nil
}

type fakeMembershipRepo struct {
	members map[pair]time.Time
	users   *fakeUserRepo
}

func newFakeMembershipRepo(users *fakeUserRepo) *fakeMembershipRepo {
	return &fakeMembershipRepo{members: make(map[pair]time.Time), users: users}
}

func (r *fakeMembershipRepo) IsMember(_ context.Context, clubID, userID int64) (bool, error) {
	_, ok := r.members[pair{clubID, userID}]
	return ok, nil
}

func (r *fakeMembershipRepo) AddMember(_ context.Context, clubID, userID int64) error {
	key := pair{clubID, userID}
	if _, ok := r.members[key]; ok {
		return apperrors.ErrAlreadyMember
	}
	r.members[key] = time.Now()
	return nil
}

func (r *fakeMembershipRepo) RemoveMember(_ context.Context, clubID, userID int64) error {
	key := pair{clubID, userID}
	if _, ok := r.members[key]; !ok {
		return apperrors.ErrNotMember
	}
	delete(r.members, key)
	return nil
}

func (r *fakeMembershipRepo) CountByClubID(_ context.Context, clubID int64) (int, error) {
	count := 0
	for key := range r.members {
		if key.a == clubID {
			count++
		}
	}
	return count, nil
}

func (r *fakeMembershipRepo) CountsByClubIDs(_ context.Context, clubIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int)
	for _, id := range clubIDs {
		n, _ := r.CountByClubID(context.Background(), id)
		counts[id] = n
	}
	return counts, nil
}

func (r *fakeMembershipRepo) GetClubIDsByUserID(_ context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for key := range r.members {
		if key.b == userID {
			ids = append(ids, key.a)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *fakeMembershipRepo) GetMembersByClubID(_ context.Context, clubID int64) ([]*models.ClubMember, error) {
	var members []*models.ClubMember
	for key, joined := range r.members {
		if key.a != clubID {
			continue
		}
		member := &models.ClubMember{ClubID: clubID, UserID: key.b, JoinedAt: joined}
		if r.users != nil {
			if user, ok := r.users.users[key.b]; ok {
				copied := *user
				member.User = &copied
			}
		}
		members = append(members, member)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].UserID < members[j].UserID })
	return members, nil
}

type fakeEventRepo struct {
	events map[int64]*models.Event
	clubs  *fakeClubRepo
	nextID int64
}

func newFakeEventRepo(clubs *fakeClubRepo) *fakeEventRepo {
	return &fakeEventRepo{events: make(map[int64]*models.Event), clubs: clubs}
}

func (r *fakeEventRepo) Create(_ context.Context, event *models.Event) (int64, error) {
	if r.clubs != nil {
		if _, ok := r.clubs.clubs[event.ClubID]; !ok {
			return 0, apperrors.ErrClubNotFound
		}
	}
	r.nextID++
	stored := *event
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.events[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	copied := *event
	if r.clubs != nil {
		if club, ok := r.clubs.clubs[event.ClubID]; ok {
			clubCopy := *club
			copied.Club = &clubCopy
		}
	}
	return &copied, nil
}

func (r *fakeEventRepo) GetAll(_ context.Context, clubID *int64, search *string, offset uint64, limit int) ([]*models.Event, error) {
	var matched []*models.Event
	for _, event := range r.events {
		if clubID != nil && event.ClubID != *clubID {
			continue
		}
		if search != nil && !strings.Contains(strings.ToLower(event.Title), strings.ToLower(*search)) {
			continue
		}
		copied := *event
		matched = append(matched, &copied)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].StartsAt.Before(matched[j].StartsAt) })
	if int(offset) >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeEventRepo) Count(_ context.Context, clubID *int64, search *string) (int64, error) {
	events, _ := r.GetAll(context.Background(), clubID, search, 0, len(r.events)+1)
	return int64(len(events)), nil
}

func (r *fakeEventRepo) GetByClubID(ctx context.Context, clubID int64) ([]*models.Event, error) {
	return r.GetAll(ctx, &clubID, nil, 0, len(r.events)+1)
}

func (r *fakeEventRepo) GetByIDs(_ context.Context, ids []int64) ([]*models.Event, error) {
	var events []*models.Event
	for _, id := range ids {
		if event, ok := r.events[id]; ok {
			copied := *event
			events = append(events, &copied)
		}
	}
	return events, nil
}

type fakeEnrollmentRepo struct {
	enrollments map[pair]time.Time
	events      *fakeEventRepo
	users       *fakeUserRepo
}

func newFakeEnrollmentRepo(events *fakeEventRepo, users *fakeUserRepo) *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{enrollments: make(map[pair]time.Time), events: events, users: users}
}

func (r *fakeEnrollmentRepo) Exists(_ context.Context, eventID, userID int64) (bool, error) {
	_, ok := r.enrollments[pair{eventID, userID}]
	return ok, nil
}

func (r *fakeEnrollmentRepo) CountByEventID(_ context.Context, eventID int64) (int, error) {
	count := 0
	for key := range r.enrollments {
		if key.a == eventID {
			count++
		}
	}
	return count, nil
}

func (r *fakeEnrollmentRepo) CountsByEventIDs(_ context.Context, eventIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int)
	for _, id := range eventIDs {
		n, _ := r.CountByEventID(context.Background(), id)
		counts[id] = n
	}
	return counts, nil
}

// Enroll mirrors the transactional capacity check of the real
// implementation.
func (r *fakeEnrollmentRepo) Enroll(ctx context.Context, eventID, userID int64) error {
	event, ok := r.events.events[eventID]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	if _, ok := r.enrollments[pair{eventID, userID}]; ok {
		return apperrors.ErrAlreadyEnrolled
	}
	count, _ := r.CountByEventID(ctx, eventID)
	if event.Capacity-count <= 0 {
		return apperrors.ErrCapacityExhausted
	}
	r.enrollments[pair{eventID, userID}] = time.Now()
	return nil
}

func (r *fakeEnrollmentRepo) Unenroll(_ context.Context, eventID, userID int64) error {
	key := pair{eventID, userID}
	if _, ok := r.enrollments[key]; !ok {
		return apperrors.ErrNotEnrolled
	}
	delete(r.enrollments, key)
	return nil
}

func (r *fakeEnrollmentRepo) GetEventIDsByUserID(_ context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for key := range r.enrollments {
		if key.b == userID {
			ids = append(ids, key.a)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *fakeEnrollmentRepo) GetEnrollmentsByEventID(_ context.Context, eventID int64) ([]*models.Enrollment, error) {
	var enrollments []*models.Enrollment
	for key, at := range r.enrollments {
		if key.a != eventID {
			continue
		}
		enrollment := &models.Enrollment{EventID: eventID, UserID: key.b, EnrolledAt: at}
		if r.users != nil {
			if user, ok := r.users.users[key.b]; ok {
				copied := *user
				enrollment.User = &copied
			}
		}
		enrollments = append(enrollments, enrollment)
	}
	sort.Slice(enrollments, func(i, j int) bool { return enrollments[i].UserID < enrollments[j].UserID })
	return enrollments, nil
}

type fakeForumRepo struct {
	topics      map[int64]*models.ForumTopic
	posts       map[int64]*models.ForumPost
	users       *fakeUserRepo
	nextTopicID int64
	nextPostID  int64
	clock       time.Time
}

func newFakeForumRepo(users *fakeUserRepo) *fakeForumRepo {
	return &fakeForumRepo{
		topics: make(map[int64]*models.ForumTopic),
		posts:  make(map[int64]*models.ForumPost),
		users:  users,
		clock:  time.Now(),
	}
}

// tick returns strictly increasing timestamps so ordering is
// deterministic even when entries are created in the same instant.
func (r *fakeForumRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Second)
	return r.clock
}

func (r *fakeForumRepo) CreateTopic(_ context.Context, topic *models.ForumTopic) (int64, error) {
	if r.users != nil {
		if _, ok := r.users.users[topic.UserID]; !ok {
			return 0, apperrors.ErrUserNotFound
		}
	}
	r.nextTopicID++
	stored := *topic
	stored.ID = r.nextTopicID
	stored.CreatedAt = r.tick()
	r.topics[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeForumRepo) GetTopicByID(_ context.Context, id int64) (*models.ForumTopic, error) {
	topic, ok := r.topics[id]
	if !ok {
		return nil, apperrors.ErrTopicNotFound
	}
	copied := *topic
	if r.users != nil {
		if user, ok := r.users.users[topic.UserID]; ok {
			userCopy := *user
			copied.Author = &userCopy
		}
	}
	return &copied, nil
}

func (r *fakeForumRepo) ListTopics(_ context.Context, offset uint64, limit int) ([]*models.ForumTopic, error) {
	var topics []*models.ForumTopic
	for _, topic := range r.topics {
		copied := *topic
		if r.users != nil {
			if user, ok := r.users.users[topic.UserID]; ok {
				userCopy := *user
				copied.Author = &userCopy
			}
		}
		topics = append(topics, &copied)
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].CreatedAt.After(topics[j].CreatedAt) })
	if int(offset) >= len(topics) {
		return nil, nil
	}
	topics = topics[offset:]
	if len(topics) > limit {
		topics = topics[:limit]
	}
	return topics, nil
}

func (r *fakeForumRepo) CountTopics(_ context.Context) (int64, error) {
	return int64(len(r.topics)), nil
}

func (r *fakeForumRepo) CreatePost(_ context.Context, post *models.ForumPost) (int64, error) {
	if _, ok := r.topics[post.TopicID]; !ok {
		return 0, apperrors.ErrTopicNotFound
	}
	r.nextPostID++
	stored := *post
	stored.ID = r.nextPostID
	stored.CreatedAt = r.tick()
	r.posts[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeForumRepo) GetPostsByTopicID(_ context.Context, topicID int64) ([]*models.ForumPost, error) {
	var posts []*models.ForumPost
	for _, post := range r.posts {
		if post.TopicID != topicID {
			continue
		}
		copied := *post
		if r.users != nil {
			if user, ok := r.users.users[post.UserID]; ok {
				userCopy := *user
				copied.Author = &userCopy
			}
		}
		posts = append(posts, &copied)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.Before(posts[j].CreatedAt) })
	return posts, nil
}

func (r *fakeForumRepo) PostCountsByTopicIDs(_ context.Context, topicIDs []int64) (map[int64]int, error) {
	counts := make(map[int64]int)
	for _, id := range topicIDs {
		for _, post := range r.posts {
			if post.TopicID == id {
				counts[id]++
			}
		}
	}
	return counts, nil
}

type fakeNewsRepo struct {
	items  map[int64]*models.NewsItem
	events *fakeEventRepo
	nextID int64
	clock  time.Time
}

func newFakeNewsRepo(events *fakeEventRepo) *fakeNewsRepo {
	return &fakeNewsRepo{items: make(map[int64]*models.NewsItem), events: events, clock: time.Now()}
}

func (r *fakeNewsRepo) Create(_ context.Context, item *models.NewsItem) (int64, error) {
	if item.EventID != nil && r.events != nil {
		if _, ok := r.events.events[*item.EventID]; !ok {
			return 0, apperrors.ErrEventNotFound
		}
	}
	r.nextID++
	r.clock = r.clock.Add(time.Second)
	stored := *item
	stored.ID = r.nextID
	stored.PublishedAt = r.clock
	r.items[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeNewsRepo) eventTitle(item *models.NewsItem) string {
	if item.EventID == nil || r.events == nil {
		return ""
	}
	if event, ok := r.events.events[*item.EventID]; ok {
		return event.Title
	}
	return ""
}

func (r *fakeNewsRepo) GetByID(_ context.Context, id int64) (*models.NewsItem, string, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, "", apperrors.ErrNewsNotFound
	}
	copied := *item
	return &copied, r.eventTitle(item), nil
}

func (r *fakeNewsRepo) List(_ context.Context, offset uint64, limit int) ([]*models.NewsItem, map[int64]string, error) {
	var items []*models.NewsItem
	titles := make(map[int64]string)
	for _, item := range r.items {
		copied := *item
		items = append(items, &copied)
		titles[item.ID] = r.eventTitle(item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].PublishedAt.After(items[j].PublishedAt) })
	if int(offset) >= len(items) {
		return nil, titles, nil
	}
	items = items[offset:]
	if len(items) > limit {
		items = items[:limit]
	}
	return items, titles, nil
}

func (r *fakeNewsRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

type fakeImageStorage struct {
	saved []string
	err   error
}

func (s *fakeImageStorage) SaveProfileImage(fileHeader *multipart.FileHeader, studentID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	name := fmt.Sprintf("%s_%d.png", studentID, len(s.saved)+1)
	s.saved = append(s.saved, name)
	return name, nil
}
