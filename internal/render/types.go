package render

// Renderer kind identifiers, used as host pool keys.
const (
	BlankCellID         = "BlankCell"
	ProfileHeaderCellID = "ProfileHeaderCell"
	ExperienceCellID    = "ExperienceCell"
	EducationCellID     = "EducationCell"
	SkillCellID         = "SkillCell"
	DishCellID          = "DishCell"
	HeadingViewID       = "HeadingView"
	FooterViewID        = "FooterView"
)

const (
	// Display values
	MissingValue = "<none>"

	// Bullet prefixes list entries.
	Bullet = "•"
)
