// Package nav decides which page of the tracker is visible. It is a small
// state machine over the four pages with one gate: filing a complaint
// requires a signed-in session. Transitions produce a declarative View that
// a UI layer renders; nothing here touches rendering technology.
package nav

import (
	"strings"
	"sync"
)

// Page identifies one of the tracker's pages.
type Page string

const (
	PageLanding   Page = "landing"
	PageRegister  Page = "register"
	PageLogin     Page = "login"
	PageComplaint Page = "complaint"
)

// GateNotice is shown when a logged-out visitor is redirected away from the
// complaint page.
const GateNotice = "You must be logged in to file a complaint. Redirecting to Sign In."

// Pages lists all pages in display order.
var Pages = []Page{PageLanding, PageRegister, PageLogin, PageComplaint}

// ParsePage resolves a page name or URL fragment ("#register") to a Page.
// "index" is accepted as a legacy alias for the landing page.
func ParsePage(s string) (Page, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch s {
	case "landing", "index":
		return PageLanding, true
	case "register":
		return PageRegister, true
	case "login":
		return PageLogin, true
	case "complaint":
		return PageComplaint, true
	}
	return "", false
}

// View is the declarative render state after a transition: which section is
// visible, which nav link is active, and what the URL fragment should say.
// The fragment always reflects the page actually shown, so a gated redirect
// rewrites it to the redirect target.
type View struct {
	Page       Page           `json:"page"`
	Fragment   string         `json:"fragment"`
	ActiveLink Page           `json:"activeLink"`
	Visible    map[Page]bool  `json:"visible"`
	Notice     string         `json:"notice,omitempty"`
	Redirected bool           `json:"redirected"`
	ScrollTop  bool           `json:"scrollTop"`
}

// Controller tracks the current page and enforces the login gate.
type Controller struct {
	mu       sync.Mutex
	current  Page
	loggedIn func() bool
}

// NewController creates a controller starting on the landing page. loggedIn
// is consulted on every transition into the complaint page.
func NewController(loggedIn func() bool) *Controller {
	return &Controller{current: PageLanding, loggedIn: loggedIn}
}

// Navigate transitions to the target page. A transition into the complaint
// page while logged out is redirected to the register page with a notice;
// every other transition is unconditional.
func (c *Controller) Navigate(target Page) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	notice := ""
	redirected := false
	if target == PageComplaint && !c.loggedIn() {
		target = PageRegister
		notice = GateNotice
		redirected = true
	}

	c.current = target
	return makeView(target, notice, redirected)
}

// Initial derives the first page from a URL fragment. An absent or unknown
// fragment, or one inconsistent with the gate, falls back to landing.
func (c *Controller) Initial(fragment string) View {
	page, ok := ParsePage(fragment)
	if !ok {
		page = PageLanding
	}
	if page == PageComplaint && !c.loggedIn() {
		page = PageLanding
	}

	c.mu.Lock()
	c.current = page
	c.mu.Unlock()
	return makeView(page, "", false)
}

// Current returns the page currently shown.
func (c *Controller) Current() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func makeView(page Page, notice string, redirected bool) View {
	visible := make(map[Page]bool, len(Pages))
	for _, p := range Pages {
		visible[p] = p == page
	}
	return View{
		Page:       page,
		Fragment:   "#" + string(page),
		ActiveLink: page,
		Visible:    visible,
		Notice:     notice,
		Redirected: redirected,
		ScrollTop:  true,
	}
}
