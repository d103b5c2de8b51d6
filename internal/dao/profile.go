package dao

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/smartlisting/smartlisting/internal/model"
	"github.com/smartlisting/smartlisting/internal/model1"
)

// ProfileAsset names the embedded profile document.
const ProfileAsset = "profile.yaml"

// HeaderInfo holds the profile banner data.
type HeaderInfo struct {
	Name         string `yaml:"name"`
	BannerImage  string `yaml:"bannerImage"`
	ProfileImage string `yaml:"profileImage"`
	Headline     string `yaml:"headline"`
	Location     string `yaml:"location"`
}

// Experience holds a past position.
type Experience struct {
	LogoImage string `yaml:"logoImage"`
	JobTitle  string `yaml:"jobTitle"`
	Company   string `yaml:"company"`
	Duration  string `yaml:"duration"`
}

// Education holds a past study.
type Education struct {
	LogoImage   string `yaml:"logoImage"`
	Institution string `yaml:"institution"`
	Field       string `yaml:"field"`
	Duration    string `yaml:"duration"`
}

// Skill holds a skill name.
type Skill struct {
	Name string `yaml:"name"`
}

// ProfileDoc represents a profile document.
type ProfileDoc struct {
	Header      HeaderInfo   `yaml:"header"`
	Experiences []Experience `yaml:"experiences"`
	Education   []Education  `yaml:"education"`
	Skills      []Skill      `yaml:"skills"`
}

// ParseProfile decodes a YAML profile document.
func ParseProfile(bb []byte) (*ProfileDoc, error) {
	var doc ProfileDoc
	if err := yaml.Unmarshal(bb, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if doc.Header.Name == "" {
		return nil, fmt.Errorf("invalid profile: header.name is required")
	}

	return &doc, nil
}

// Profile provides the profile screen sections.
type Profile struct {
	Resource
}

// Skeleton returns a loading banner, as the real layout is unknown until load.
func (*Profile) Skeleton() []model.Section {
	return []model.Section{
		{
			Items: []model1.ViewModel{model1.Loading[ProfileHeaderItem]()},
		},
		{
			Header: model1.Loading[HeadingItem](),
			Items: []model1.ViewModel{
				model1.Loading[ExperienceItem](),
				model1.Loading[ExperienceItem](),
			},
		},
	}
}

// Load reads the profile document and builds its sections.
func (p *Profile) Load(ctx context.Context) ([]model.Section, error) {
	bb, err := p.document(ctx, ProfileAsset)
	if err != nil {
		return nil, err
	}
	doc, err := ParseProfile(bb)
	if err != nil {
		return nil, err
	}

	return ProfileSections(doc), nil
}

// ProfileSections lays a profile out as list sections. Empty groups are
// left out.
func ProfileSections(doc *ProfileDoc) []model.Section {
	ss := []model.Section{
		{
			Footer: FooterItem{},
			Items: []model1.ViewModel{
				model1.Loaded(ProfileHeaderItem{Info: doc.Header}),
			},
		},
	}

	if n := len(doc.Experiences); n > 0 {
		items := make([]model1.ViewModel, 0, n)
		for i, e := range doc.Experiences {
			items = append(items, model1.Loaded(ExperienceItem{Experience: e, IsLast: i == n-1}))
		}
		ss = append(ss, groupSection("Experience", items))
	}

	if n := len(doc.Education); n > 0 {
		items := make([]model1.ViewModel, 0, n)
		for i, e := range doc.Education {
			items = append(items, model1.Loaded(EducationItem{Education: e, IsLast: i == n-1}))
		}
		ss = append(ss, groupSection("Education", items))
	}

	if n := len(doc.Skills); n > 0 {
		items := make([]model1.ViewModel, 0, n)
		for i, s := range doc.Skills {
			items = append(items, model1.Loaded(SkillItem{Skill: s, IsLast: i == n-1}))
		}
		ss = append(ss, groupSection("Skills", items))
	}

	return ss
}

func groupSection(heading string, items []model1.ViewModel) model.Section {
	return model.Section{
		Header: model1.Loaded(HeadingItem{Heading: heading}),
		Footer: FooterItem{},
		Items:  items,
	}
}
