package screens

import (
	"fmt"
	"net/url"
	"strings"

	"travelshell/internal/nav"
	"travelshell/internal/ui"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Article is a featured travel story on the Home screen.
type Article struct {
	Title string
	URL   string
}

// FeaturedArticles is the built-in Home feed.
var FeaturedArticles = []Article{
	{Title: "한여름의 하모니, 울산 남구 여행", URL: "https://ktxmagazine.kr/ulsan-namgu/"},
	{Title: "물길 따라 흐르는 마음, 안동 여행", URL: "https://ktxmagazine.kr/andong/"},
	{Title: "강릉에서 감성 충전, 여름 여행", URL: "https://ktxmagazine.kr/gangneung/"},
	{Title: "소청도의 청정 매력을 만나는 여행", URL: "https://www.travie.com/news/articleView.html?idxno=54571"},
	{Title: "속초, 동해의 숨은 보석 같은 여행지", URL: "https://www.travie.com/news/articleView.html?idxno=54279"},
	{Title: "김천, 자연과 역사 속으로 떠나는 여행", URL: "https://www.travie.com/news/articleView.html?idxno=54278"},
	{Title: "철원, 평화의 숨결이 느껴지는 여행", URL: "https://www.travie.com/news/articleView.html?idxno=54254"},
}

type articleItem struct{ Article }

func (a articleItem) FilterValue() string { return a.Article.Title }
func (a articleItem) Title() string       { return a.Article.Title }
func (a articleItem) Description() string {
	u, err := url.Parse(a.URL)
	if err != nil {
		return a.URL
	}
	return strings.TrimPrefix(u.Host, "www.")
}

// HomeScreen lists featured articles.
type HomeScreen struct {
	base
	list list.Model
}

var (
	_ nav.Screen = (*HomeScreen)(nil)
	_ ui.View    = (*HomeScreen)(nil)
)

// NewHome creates a Home screen over articles.
func NewHome(articles []Article) *HomeScreen {
	items := make([]list.Item, len(articles))
	for i, a := range articles {
		items[i] = articleItem{a}
	}
	return &HomeScreen{
		base: base{target: nav.Home},
		list: newList(fmt.Sprintf("추천 여행 (%d)", len(articles)), items, true),
	}
}

// Selected returns the highlighted article.
func (h *HomeScreen) Selected() (Article, bool) {
	it, ok := h.list.SelectedItem().(articleItem)
	return it.Article, ok
}

// Init implements ui.View.
func (h *HomeScreen) Init() tea.Cmd { return nil }

// Update implements ui.View.
func (h *HomeScreen) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		h.list.SetSize(sz.Width, sz.Height)
		return h, nil
	}
	var cmd tea.Cmd
	h.list, cmd = h.list.Update(msg)
	return h, cmd
}

// View implements ui.View.
func (h *HomeScreen) View() string {
	ensureListSize(&h.list)
	return h.list.View()
}
