package dao

import "fmt"

// View-model kind identifiers.
const (
	ProfileHeaderKind = "profile-header"
	ExperienceKind    = "experience"
	EducationKind     = "education"
	SkillKind         = "skill"
	DishKind          = "dish"
	HeadingKind       = "heading"
	FooterKind        = "footer"
)

// ProfileHeaderItem drives the profile banner row.
type ProfileHeaderItem struct {
	Info HeaderInfo
}

// Identifier returns the view-model kind.
func (ProfileHeaderItem) Identifier() string { return ProfileHeaderKind }

// ExperienceItem drives an experience row.
type ExperienceItem struct {
	Experience
	IsLast bool
}

// Identifier returns the view-model kind.
func (ExperienceItem) Identifier() string { return ExperienceKind }

// IsSeparatorHidden returns true for the last row of a section.
func (e ExperienceItem) IsSeparatorHidden() bool { return e.IsLast }

// EducationItem drives an education row.
type EducationItem struct {
	Education
	IsLast bool
}

// Identifier returns the view-model kind.
func (EducationItem) Identifier() string { return EducationKind }

// IsSeparatorHidden returns true for the last row of a section.
func (e EducationItem) IsSeparatorHidden() bool { return e.IsLast }

// SkillItem drives a skill row.
type SkillItem struct {
	Skill
	IsLast bool
}

// Identifier returns the view-model kind.
func (SkillItem) Identifier() string { return SkillKind }

// IsSeparatorHidden returns true for the last row of a section.
func (s SkillItem) IsSeparatorHidden() bool { return s.IsLast }

// String returns the skill name.
func (s SkillItem) String() string { return s.Name }

// DishItem drives a dining menu row.
type DishItem struct {
	Title string
	Price string
}

// Identifier returns the view-model kind.
func (DishItem) Identifier() string { return DishKind }

// String returns the dish title.
func (d DishItem) String() string { return d.Title }

// HeadingItem drives a section header.
type HeadingItem struct {
	Heading string
}

// Identifier returns the view-model kind.
func (HeadingItem) Identifier() string { return HeadingKind }

// String returns the heading.
func (h HeadingItem) String() string { return h.Heading }

// FooterItem drives a section footer.
type FooterItem struct {
	Note string
}

// Identifier returns the view-model kind.
func (FooterItem) Identifier() string { return FooterKind }

// String returns a diagnostic representation.
func (f FooterItem) String() string { return fmt.Sprintf("Footer(%s)", f.Note) }
