package dao

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/smartlisting/smartlisting/internal/model"
	"github.com/smartlisting/smartlisting/internal/model1"
)

const (
	// MenuAsset names the embedded dining menu document.
	MenuAsset = "menu.ini"

	// menuSkeletonRows is the number of placeholder dishes shown while loading.
	menuSkeletonRows = 3
)

// Course represents a menu section.
type Course struct {
	Name   string
	Dishes []DishItem
}

// ParseMenu decodes an INI menu. Each INI section is a course, each key a
// dish priced by its value. Keys outside any section form an untitled course.
func ParseMenu(bb []byte) ([]Course, error) {
	f, err := ini.LoadSources(ini.LoadOptions{KeyValueDelimiters: "="}, bb)
	if err != nil {
		return nil, fmt.Errorf("failed to parse menu: %w", err)
	}

	cc := make([]Course, 0, len(f.Sections()))
	for _, sec := range f.Sections() {
		keys := sec.Keys()
		if len(keys) == 0 {
			continue
		}
		name := sec.Name()
		if name == ini.DefaultSection {
			name = ""
		}
		course := Course{Name: name, Dishes: make([]DishItem, 0, len(keys))}
		for _, k := range keys {
			price, err := formatPrice(k.String())
			if err != nil {
				return nil, fmt.Errorf("invalid price for %q in [%s]: %w", k.Name(), sec.Name(), err)
			}
			course.Dishes = append(course.Dishes, DishItem{Title: k.Name(), Price: price})
		}
		sort.SliceStable(course.Dishes, func(i, j int) bool {
			return model1.Less("", "", course.Dishes[i].Title, course.Dishes[j].Title)
		})
		cc = append(cc, course)
	}

	return cc, nil
}

func formatPrice(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", err
	}
	if v < 0 {
		return "", fmt.Errorf("negative price %s", s)
	}

	return strconv.FormatFloat(v, 'f', 2, 64), nil
}

// Menu provides the dining menu screen sections.
type Menu struct {
	Resource
}

// Skeleton returns a single section of loading dishes.
func (*Menu) Skeleton() []model.Section {
	items := make([]model1.ViewModel, 0, menuSkeletonRows)
	for range menuSkeletonRows {
		items = append(items, model1.Loading[DishItem]())
	}

	return []model.Section{{Items: items}}
}

// Load reads the menu document and builds its sections.
func (m *Menu) Load(ctx context.Context) ([]model.Section, error) {
	bb, err := m.document(ctx, MenuAsset)
	if err != nil {
		return nil, err
	}
	cc, err := ParseMenu(bb)
	if err != nil {
		return nil, err
	}

	return MenuSections(cc), nil
}

// MenuSections lays courses out as list sections.
func MenuSections(cc []Course) []model.Section {
	ss := make([]model.Section, 0, len(cc))
	for _, c := range cc {
		s := model.Section{Items: make([]model1.ViewModel, 0, len(c.Dishes))}
		if c.Name != "" {
			s.Header = model1.Loaded(HeadingItem{Heading: c.Name})
		}
		for _, d := range c.Dishes {
			s.Items = append(s.Items, model1.Loaded(d))
		}
		ss = append(ss, s)
	}

	return ss
}
