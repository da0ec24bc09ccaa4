package handlers

import (
	"errors"

	"mosaic-media/internal/db"
	"mosaic-media/internal/models"
)

// stubStore is an in-memory Store for handler tests. Setting failWith
// makes every operation fail; counters record which operations ran.
type stubStore struct {
	failWith error

	users       []models.User
	blogs       []models.Blog
	categories  []models.Category
	sections    []models.Section
	projects    []models.Project
	projectCats []models.ProjectCategory
	contacts    []models.ContactSubmission

	createBlogCalls    int
	createContactCalls int
	reordered          []models.SectionOrder
}

var errNotFound = errors.New("not found")

func (s *stubStore) CreateUser(email, passwordHash, role string) (*models.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	user := models.User{ID: len(s.users) + 1, Email: email, PasswordHash: passwordHash, Role: role}
	s.users = append(s.users, user)
	return &user, nil
}

func (s *stubStore) GetUserByEmail(email string) (*models.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for i := range s.users {
		if s.users[i].Email == email {
			return &s.users[i], nil
		}
	}
	return nil, errNotFound
}

func (s *stubStore) GetUserByID(id int) (*models.User, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i], nil
		}
	}
	return nil, errNotFound
}

func (s *stubStore) CreateBlog(b *models.Blog) error {
	s.createBlogCalls++
	if s.failWith != nil {
		return s.failWith
	}
	b.ID = len(s.blogs) + 1
	s.blogs = append(s.blogs, *b)
	return nil
}

func (s *stubStore) ListBlogs(f db.BlogFilter) ([]models.Blog, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := []models.Blog{}
	for _, b := range s.blogs {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.Status == "" && b.Status == models.StatusDeleted {
			continue
		}
		if f.Featured != nil && b.Featured != *f.Featured {
			continue
		}
		if f.SectionID != 0 && (b.SectionID == nil || *b.SectionID != f.SectionID) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *stubStore) GetBlogBySlug(slug string) (*models.Blog, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for i := range s.blogs {
		if s.blogs[i].Slug == slug {
			return &s.blogs[i], nil
		}
	}
	return nil, errNotFound
}

func (s *stubStore) GetBlogByID(id int) (*models.Blog, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for i := range s.blogs {
		if s.blogs[i].ID == id {
			return &s.blogs[i], nil
		}
	}
	return nil, errNotFound
}

func (s *stubStore) UpdateBlog(b *models.Blog) error {
	if s.failWith != nil {
		return s.failWith
	}
	for i := range s.blogs {
		if s.blogs[i].ID == b.ID {
			s.blogs[i] = *b
			return nil
		}
	}
	return errNotFound
}

func (s *stubStore) SoftDeleteBlog(id int) error {
	if s.failWith != nil {
		return s.failWith
	}
	for i := range s.blogs {
		if s.blogs[i].ID == id {
			s.blogs[i].Status = models.StatusDeleted
			return nil
		}
	}
	return errNotFound
}

func (s *stubStore) HardDeleteBlog(id int) error {
	if s.failWith != nil {
		return s.failWith
	}
	for i := range s.blogs {
		if s.blogs[i].ID == id {
			s.blogs = append(s.blogs[:i], s.blogs[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (s *stubStore) CreateCategory(c *models.Category) error {
	if s.failWith != nil {
		return s.failWith
	}
	c.ID = len(s.categories) + 1
	s.categories = append(s.categories, *c)
	return nil
}

func (s *stubStore) ListCategories() ([]models.Category, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return append([]models.Category{}, s.categories...), nil
}

func (s *stubStore) GetCategoryByID(id int) (*models.Category, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for i := range s.categories {
		if s.categories[i].ID == id {
			return &s.categories[i], nil
		}
	}
	return nil, errNotFound
}

func (s *stubStore) GetCategoryBySlug(slug string) (*models.Category, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for i := range s.categories {
		if s.categories[i].Slug == slug {
			return &s.categories[i], nil
		}
	}
	return nil, errNotFound
}

func (s *stubStore) UpdateCategory(c *models.Category) error {
	if s.failWith != nil {
		return s.failWith
	}
	for i := range s.categories {
		if s.categories[i].ID == c.ID {
			s.categories[i] = *c
			return nil
		}
	}
	return errNotFound
}

func (s *stubStore) DeleteCategory(id int) error {
	if s.failWith != nil {
		return s.failWith
	}
	return nil
}

func (s *stubStore) CreateSection(sec *models.Section) error {
	if s.failWith != nil {
		return s.failWith
	}
	sec.ID = len(s.sections) + 1
	s.sections = append(s.sections, *sec)
	return nil
}

func (s *stubStore) ListSections(activeOnly bool) ([]models.Section, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := []models.Section{}
	for _, sec := range s.sections {
		if activeOnly && !sec.IsActive {
			continue
		}
		out = append(out, sec)
	}
	return out, nil
}

func (s *stubStore) GetSectionByID(id int) (*models.Section, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for i := range s.sections {
		if s.sections[i].ID == id {
			return &s.sections[i], nil
		}
	}
	return nil, errNotFound
}

func (s *stubStore) UpdateSection(sec *models.Section) error {
	if s.failWith != nil {
		return s.failWith
	}
	for i := range s.sections {
		if s.sections[i].ID == sec.ID {
			s.sections[i] = *sec
			return nil
		}
	}
	return errNotFound
}

func (s *stubStore) DeleteSection(id int) error {
	if s.failWith != nil {
		return s.failWith
	}
	return nil
}

func (s *stubStore) ReorderSections(orders []models.SectionOrder) error {
	if s.failWith != nil {
		return s.failWith
	}
	s.reordered = append([]models.SectionOrder{}, orders...)
	for _, o := range orders {
		for i := range s.sections {
			if s.sections[i].ID == o.ID {
				s.sections[i].Position = o.Position
			}
		}
	}
	return nil
}

func (s *stubStore) CreateProject(p *models.Project) error {
	if s.failWith != nil {
		return s.failWith
	}
	p.ID = len(s.projects) + 1
	s.projects = append(s.projects, *p)
	return nil
}

func (s *stubStore) ListProjects(categorySlug string) ([]models.Project, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return append([]models.Project{}, s.projects...), nil
}

func (s *stubStore) GetProjectByID(id int) (*models.Project, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for i := range s.projects {
		if s.projects[i].ID == id {
			return &s.projects[i], nil
		}
	}
	return nil, errNotFound
}

func (s *stubStore) UpdateProject(p *models.Project) error {
	if s.failWith != nil {
		return s.failWith
	}
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = *p
			return nil
		}
	}
	return errNotFound
}

func (s *stubStore) DeleteProject(id int) error {
	if s.failWith != nil {
		return s.failWith
	}
	return nil
}

func (s *stubStore) CreateProjectCategory(c *models.ProjectCategory) error {
	if s.failWith != nil {
		return s.failWith
	}
	c.ID = len(s.projectCats) + 1
	s.projectCats = append(s.projectCats, *c)
	return nil
}

func (s *stubStore) ListProjectCategories() ([]models.ProjectCategory, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return append([]models.ProjectCategory{}, s.projectCats...), nil
}

func (s *stubStore) GetProjectCategoryByID(id int) (*models.ProjectCategory, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	for i := range s.projectCats {
		if s.projectCats[i].ID == id {
			return &s.projectCats[i], nil
		}
	}
	return nil, errNotFound
}

func (s *stubStore) UpdateProjectCategory(c *models.ProjectCategory) error {
	if s.failWith != nil {
		return s.failWith
	}
	return nil
}

func (s *stubStore) DeleteProjectCategory(id int) error {
	if s.failWith != nil {
		return s.failWith
	}
	return nil
}

func (s *stubStore) CreateContactSubmission(sub *models.ContactSubmission) error {
	s.createContactCalls++
	if s.failWith != nil {
		return s.failWith
	}
	sub.ID = len(s.contacts) + 1
	s.contacts = append(s.contacts, *sub)
	return nil
}

func (s *stubStore) ListContactSubmissions() ([]models.ContactSubmission, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return append([]models.ContactSubmission{}, s.contacts...), nil
}

func (s *stubStore) DeleteContactSubmission(id int) error {
	if s.failWith != nil {
		return s.failWith
	}
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return nil
		}
	}
	return errNotFound
}
