package app

// menuAction identifies a dispatchable menu entry.
type menuAction int

const (
	actionNone menuAction = iota
	actionManageFiles
	actionStageAll
	actionCommit
	actionPush
	actionPull
	actionNewBranch
	actionMergeBranch
	actionViewStatus
	actionPRDescription
	actionCreatePR
	actionGenerateTests
	actionImproveCommit
	actionInteractiveCommit
	actionChangelog
	actionCodeReview
	actionRefresh
	actionConfiguration
	actionExit
)

// menuItem is one row of a menu tab. The same table drives both the
// renderer and the dispatcher, so a rendered row can never point at a
// missing action.
type menuItem struct {
	Icon   string
	Label  string
	Action menuAction
}

// menuTab groups the items shown under one tab title.
type menuTab struct {
	Title string
	Items []menuItem
}

// Tab indexes into menuTabs.
const (
	tabGitOperations = iota
	tabAIFeatures
	tabUtilities
)

// menuTabs returns the three menu tabs. The slice is rebuilt per call so
// callers can never mutate shared state.
func menuTabs() []menuTab {
	return []menuTab{
		{
			Title: "Git Operations",
			Items: []menuItem{
				{Icon: "📁", Label: "Manage files (f)", Action: actionManageFiles},
				{Icon: "📝", Label: "Stage all changes", Action: actionStageAll},
				{Icon: "💾", Label: "Commit changes", Action: actionCommit},
				{Icon: "🚀", Label: "Push to remote", Action: actionPush},
				{Icon: "📥", Label: "Pull from remote", Action: actionPull},
				{Icon: "🌿", Label: "New branch", Action: actionNewBranch},
				{Icon: "🔀", Label: "Merge branch", Action: actionMergeBranch},
				{Icon: "📋", Label: "View status", Action: actionViewStatus},
			},
		},
		{
			Title: "AI Features",
			Items: []menuItem{
				{Icon: "✨", Label: "Generate PR description", Action: actionPRDescription},
				{Icon: "🚀", Label: "Create PR with AI description", Action: actionCreatePR},
				{Icon: "🧪", Label: "Generate unit tests", Action: actionGenerateTests},
				{Icon: "💬", Label: "Improve commit message", Action: actionImproveCommit},
				{Icon: "📝", Label: "Interactive commit", Action: actionInteractiveCommit},
				{Icon: "📋", Label: "Generate changelog", Action: actionChangelog},
				{Icon: "🔍", Label: "Code review", Action: actionCodeReview},
			},
		},
		{
			Title: "Utilities",
			Items: []menuItem{
				{Icon: "🔄", Label: "Refresh status", Action: actionRefresh},
				{Icon: "⚙️", Label: "Configuration", Action: actionConfiguration},
				{Icon: "❌", Label: "Exit", Action: actionExit},
			},
		},
	}
}

// currentTab returns the active tab's table.
func (m *Model) currentTab() menuTab {
	tabs := m.data.tabs
	if m.ui.activeTab < 0 || m.ui.activeTab >= len(tabs) {
		return menuTab{}
	}
	return tabs[m.ui.activeTab]
}

// selectedItem returns the highlighted entry of the active tab, if any.
func (m *Model) selectedItem() (menuItem, bool) {
	tab := m.currentTab()
	if len(tab.Items) == 0 {
		return menuItem{}, false
	}
	pos := m.ui.menuCursor.Pos()
	if pos < 0 || pos >= len(tab.Items) {
		return menuItem{}, false
	}
	return tab.Items[pos], true
}

// cycleTab advances the active tab by delta, wrapping, and resets the
// menu cursor to the first entry.
func (m *Model) cycleTab(delta int) {
	n := len(m.data.tabs)
	if n == 0 {
		return
	}
	m.ui.activeTab = (m.ui.activeTab + delta + n) % n
	m.ui.menuCursor.Reset()
}
