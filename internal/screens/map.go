package screens

import (
	"context"
	"fmt"
	"os"
	"strings"

	"travelshell/internal/nav"
	"travelshell/internal/ui"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

// Region is a destination listed on the Map screen.
type Region struct {
	Name     string `yaml:"name"`
	Province string `yaml:"province"`
	Visited  bool   `yaml:"visited"`
}

// BuiltinRegions is shown when no regions file is configured.
var BuiltinRegions = []Region{
	{Name: "강릉", Province: "강원"},
	{Name: "속초", Province: "강원"},
	{Name: "철원", Province: "강원"},
	{Name: "안동", Province: "경북"},
	{Name: "김천", Province: "경북"},
	{Name: "포항", Province: "경북"},
	{Name: "울산", Province: "울산"},
	{Name: "단양", Province: "충북"},
}

type regionItem struct{ Region }

func (r regionItem) FilterValue() string { return r.Name }
func (r regionItem) Title() string {
	if r.Visited {
		return "✓ " + r.Name
	}
	return "  " + r.Name
}
func (r regionItem) Description() string { return r.Province }

// MapScreen lists regions and how many have been visited.
type MapScreen struct {
	base
	Regions []Region
	list    list.Model
}

var (
	_ nav.Screen = (*MapScreen)(nil)
	_ ui.View    = (*MapScreen)(nil)
)

// NewMap creates a Map screen over regions.
func NewMap(regions []Region) *MapScreen {
	items := make([]list.Item, len(regions))
	visited := 0
	for i, r := range regions {
		items[i] = regionItem{r}
		if r.Visited {
			visited++
		}
	}
	title := fmt.Sprintf("지도 · 방문한 지역 %d/%d", visited, len(regions))
	return &MapScreen{
		base:    base{target: nav.Map},
		Regions: regions,
		list:    newList(title, items, true),
	}
}

// LoadRegions reads a YAML list of regions.
func LoadRegions(path string) ([]Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read regions: %w", err)
	}
	var regions []Region
	if err := yaml.Unmarshal(data, &regions); err != nil {
		return nil, fmt.Errorf("failed to parse regions %s: %w", path, err)
	}
	out := regions[:0]
	for _, r := range regions {
		if strings.TrimSpace(r.Name) != "" {
			out = append(out, r)
		}
	}
	return out, nil
}

// MapLoader returns a loader that builds the Map screen from a regions file.
func MapLoader(path string) ui.ScreenLoader {
	return func(ctx context.Context) (nav.Screen, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		regions, err := LoadRegions(path)
		if err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return NewMap(regions), nil
	}
}

// Init implements ui.View.
func (m *MapScreen) Init() tea.Cmd { return nil }

// Update implements ui.View.
func (m *MapScreen) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(sz.Width, sz.Height)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements ui.View.
func (m *MapScreen) View() string {
	if len(m.Regions) == 0 {
		return ui.Styles.Title.Render("지도") + "\n\n" + ui.Styles.Empty.Render("No regions yet")
	}
	ensureListSize(&m.list)
	return m.list.View()
}
