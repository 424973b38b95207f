package xibo

import "fmt"

// Entity shapes mirror the CMS JSON responses. They exist for validation
// only; the CMS owns their lifecycle. Validate reports the required fields a
// well-formed response must carry.

// About is the CMS version information.
type About struct {
	Version   string `json:"version"`
	SourceURL string `json:"sourceUrl,omitempty"`
}

func (a *About) Validate() error {
	if a.Version == "" {
		return fmt.Errorf("about entry missing version")
	}
	return nil
}

// ClockInfo is the CMS server time.
type ClockInfo struct {
	Time string `json:"time"`
}

func (c *ClockInfo) Validate() error {
	if c.Time == "" {
		return fmt.Errorf("clock entry missing time")
	}
	return nil
}

// Display is a registered player device.
type Display struct {
	DisplayID       int    `json:"displayId"`
	Display         string `json:"display"`
	Description     string `json:"description,omitempty"`
	Licensed        int    `json:"licensed"`
	LoggedIn        int    `json:"loggedIn"`
	LastAccessed    string `json:"lastAccessed,omitempty"`
	ClientAddress   string `json:"clientAddress,omitempty"`
	ClientType      string `json:"clientType,omitempty"`
	ClientVersion   string `json:"clientVersion,omitempty"`
	DisplayGroupID  int    `json:"displayGroupId,omitempty"`
	DefaultLayoutID int    `json:"defaultLayoutId,omitempty"`
	MediaInventory  int    `json:"mediaInventoryStatus,omitempty"`
	Tags            []Tag  `json:"tags,omitempty"`
}

func (d *Display) Validate() error {
	if d.DisplayID == 0 {
		return fmt.Errorf("display entry missing displayId")
	}
	if d.Display == "" {
		return fmt.Errorf("display %d missing name", d.DisplayID)
	}
	return nil
}

// DisplayGroup is a named collection of displays.
type DisplayGroup struct {
	DisplayGroupID int    `json:"displayGroupId"`
	DisplayGroup   string `json:"displayGroup"`
	Description    string `json:"description,omitempty"`
	IsDynamic      int    `json:"isDynamic"`
	DynamicCriteria string `json:"dynamicCriteria,omitempty"`
}

func (g *DisplayGroup) Validate() error {
	if g.DisplayGroupID == 0 {
		return fmt.Errorf("display group entry missing displayGroupId")
	}
	if g.DisplayGroup == "" {
		return fmt.Errorf("display group %d missing name", g.DisplayGroupID)
	}
	return nil
}

// Layout is a screen design.
type Layout struct {
	LayoutID          int    `json:"layoutId"`
	Layout            string `json:"layout"`
	Description       string `json:"description,omitempty"`
	Status            int    `json:"status"`
	Retired           int    `json:"retired"`
	PublishedStatusID int    `json:"publishedStatusId,omitempty"`
	PublishedStatus   string `json:"publishedStatus,omitempty"`
	Width             float64 `json:"width,omitempty"`
	Height            float64 `json:"height,omitempty"`
	Duration          int    `json:"duration,omitempty"`
	ParentID          int    `json:"parentId,omitempty"`
	CampaignID        int    `json:"campaignId,omitempty"`
	FolderID          int    `json:"folderId,omitempty"`
	Tags              []Tag  `json:"tags,omitempty"`
}

func (l *Layout) Validate() error {
	if l.LayoutID == 0 {
		return fmt.Errorf("layout entry missing layoutId")
	}
	if l.Layout == "" {
		return fmt.Errorf("layout %d missing name", l.LayoutID)
	}
	return nil
}

// Campaign is an ordered list of layouts scheduled as one unit.
type Campaign struct {
	CampaignID    int    `json:"campaignId"`
	Campaign      string `json:"campaign"`
	Type          string `json:"type,omitempty"`
	IsLayoutSpecific int `json:"isLayoutSpecific"`
	NumberLayouts int    `json:"numberLayouts"`
	TotalDuration int    `json:"totalDuration,omitempty"`
	FolderID      int    `json:"folderId,omitempty"`
	Tags          []Tag  `json:"tags,omitempty"`
}

func (c *Campaign) Validate() error {
	if c.CampaignID == 0 {
		return fmt.Errorf("campaign entry missing campaignId")
	}
	if c.Campaign == "" {
		return fmt.Errorf("campaign %d missing name", c.CampaignID)
	}
	return nil
}

// ScheduleEvent is one entry on the scheduling calendar.
type ScheduleEvent struct {
	EventID       int    `json:"eventId"`
	EventTypeID   int    `json:"eventTypeId"`
	CampaignID    int    `json:"campaignId,omitempty"`
	CommandID     int    `json:"commandId,omitempty"`
	FromDt        string `json:"fromDt,omitempty"`
	ToDt          string `json:"toDt,omitempty"`
	IsPriority    int    `json:"isPriority"`
	DisplayOrder  int    `json:"displayOrder"`
	DayPartID     int    `json:"dayPartId,omitempty"`
	RecurrenceType string `json:"recurrenceType,omitempty"`
	DisplayGroups []DisplayGroup `json:"displayGroups,omitempty"`
}

func (e *ScheduleEvent) Validate() error {
	if e.EventID == 0 {
		return fmt.Errorf("schedule event missing eventId")
	}
	return nil
}

// Tag labels layouts, media, campaigns and displays.
type Tag struct {
	TagID      int    `json:"tagId"`
	Tag        string `json:"tag"`
	IsSystem   int    `json:"isSystem"`
	IsRequired int    `json:"isRequired"`
	Options    string `json:"options,omitempty"`
}

func (t *Tag) Validate() error {
	if t.TagID == 0 {
		return fmt.Errorf("tag entry missing tagId")
	}
	if t.Tag == "" {
		return fmt.Errorf("tag %d missing name", t.TagID)
	}
	return nil
}

// Template is a reusable layout starting point. The CMS serves templates
// with layout-shaped records.
type Template struct {
	TemplateID  int    `json:"templateId,omitempty"`
	LayoutID    int    `json:"layoutId,omitempty"`
	Template    string `json:"template,omitempty"`
	Layout      string `json:"layout,omitempty"`
	Description string `json:"description,omitempty"`
	Tags        []Tag  `json:"tags,omitempty"`
}

func (t *Template) Validate() error {
	if t.TemplateID == 0 && t.LayoutID == 0 {
		return fmt.Errorf("template entry missing identifier")
	}
	return nil
}

// UserGroup is a permission group.
type UserGroup struct {
	GroupID        int    `json:"groupId"`
	Group          string `json:"group"`
	IsUserSpecific int    `json:"isUserSpecific"`
	IsEveryone     int    `json:"isEveryone"`
	Description    string `json:"description,omitempty"`
	LibraryQuota   int    `json:"libraryQuota,omitempty"`
}

func (g *UserGroup) Validate() error {
	if g.GroupID == 0 {
		return fmt.Errorf("user group entry missing groupId")
	}
	if g.Group == "" {
		return fmt.Errorf("user group %d missing name", g.GroupID)
	}
	return nil
}

// User is a CMS account.
type User struct {
	UserID       int    `json:"userId"`
	UserName     string `json:"userName"`
	UserTypeID   int    `json:"userTypeId"`
	Email        string `json:"email,omitempty"`
	HomeFolderID int    `json:"homeFolderId,omitempty"`
	Retired      int    `json:"retired"`
	GroupID      int    `json:"groupId,omitempty"`
}

func (u *User) Validate() error {
	if u.UserID == 0 {
		return fmt.Errorf("user entry missing userId")
	}
	if u.UserName == "" {
		return fmt.Errorf("user %d missing userName", u.UserID)
	}
	return nil
}

// Notification is a CMS notice shown to users or displays.
type Notification struct {
	NotificationID int    `json:"notificationId"`
	Subject        string `json:"subject"`
	Body           string `json:"body,omitempty"`
	CreateDt       string `json:"createDt,omitempty"`
	ReleaseDt      string `json:"releaseDt,omitempty"`
	IsInterrupt    int    `json:"isInterrupt"`
	IsSystem       int    `json:"isSystem"`
}

func (n *Notification) Validate() error {
	if n.NotificationID == 0 {
		return fmt.Errorf("notification entry missing notificationId")
	}
	if n.Subject == "" {
		return fmt.Errorf("notification %d missing subject", n.NotificationID)
	}
	return nil
}

// Stat is one row of the proof-of-play statistics report.
type Stat struct {
	Type      string `json:"type"`
	Display   string `json:"display,omitempty"`
	DisplayID int    `json:"displayId,omitempty"`
	Layout    string `json:"layout,omitempty"`
	LayoutID  int    `json:"layoutId,omitempty"`
	Media     string `json:"media,omitempty"`
	MediaID   int    `json:"mediaId,omitempty"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
	Duration  int    `json:"duration,omitempty"`
	Count     int    `json:"count,omitempty"`
}

func (s *Stat) Validate() error {
	if s.Type == "" {
		return fmt.Errorf("stat row missing type")
	}
	return nil
}

// Media is a library file.
type Media struct {
	MediaID   int    `json:"mediaId"`
	Name      string `json:"name"`
	MediaType string `json:"mediaType,omitempty"`
	StoredAs  string `json:"storedAs,omitempty"`
	Duration  int    `json:"duration,omitempty"`
	FileSize  int64  `json:"fileSize,omitempty"`
	Retired   int    `json:"retired"`
	FolderID  int    `json:"folderId,omitempty"`
	Tags      []Tag  `json:"tags,omitempty"`
}

func (m *Media) Validate() error {
	if m.MediaID == 0 {
		return fmt.Errorf("media entry missing mediaId")
	}
	if m.Name == "" {
		return fmt.Errorf("media %d missing name", m.MediaID)
	}
	return nil
}

// Folder is a node in the library folder tree.
type Folder struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	ParentID int    `json:"parentId,omitempty"`
	IsRoot   int    `json:"isRoot"`
}

func (f *Folder) Validate() error {
	if f.ID == 0 {
		return fmt.Errorf("folder entry missing id")
	}
	if f.Text == "" {
		return fmt.Errorf("folder %d missing name", f.ID)
	}
	return nil
}

// Playlist is an ordered set of widgets/media.
type Playlist struct {
	PlaylistID int    `json:"playlistId"`
	Name       string `json:"name"`
	Duration   int    `json:"duration,omitempty"`
	OwnerID    int    `json:"ownerId,omitempty"`
	FolderID   int    `json:"folderId,omitempty"`
	IsDynamic  int    `json:"isDynamic"`
	Tags       []Tag  `json:"tags,omitempty"`
}

func (p *Playlist) Validate() error {
	if p.PlaylistID == 0 {
		return fmt.Errorf("playlist entry missing playlistId")
	}
	if p.Name == "" {
		return fmt.Errorf("playlist %d missing name", p.PlaylistID)
	}
	return nil
}

// DataSet is a tabular data source for data-driven widgets.
type DataSet struct {
	DataSetID   int    `json:"dataSetId"`
	DataSet     string `json:"dataSet"`
	Description string `json:"description,omitempty"`
	Code        string `json:"code,omitempty"`
	IsRemote    int    `json:"isRemote"`
}

func (d *DataSet) Validate() error {
	if d.DataSetID == 0 {
		return fmt.Errorf("dataset entry missing dataSetId")
	}
	if d.DataSet == "" {
		return fmt.Errorf("dataset %d missing name", d.DataSetID)
	}
	return nil
}

// Resolution is a layout design size.
type Resolution struct {
	ResolutionID int    `json:"resolutionId"`
	Resolution   string `json:"resolution"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Enabled      int    `json:"enabled"`
}

func (r *Resolution) Validate() error {
	if r.ResolutionID == 0 {
		return fmt.Errorf("resolution entry missing resolutionId")
	}
	if r.Resolution == "" {
		return fmt.Errorf("resolution %d missing name", r.ResolutionID)
	}
	return nil
}

// Command is a shell command that can be sent to players.
type Command struct {
	CommandID   int    `json:"commandId"`
	Command     string `json:"command"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
}

func (c *Command) Validate() error {
	if c.CommandID == 0 {
		return fmt.Errorf("command entry missing commandId")
	}
	if c.Command == "" {
		return fmt.Errorf("command %d missing name", c.CommandID)
	}
	return nil
}

// Daypart is a named time window used by the scheduler.
type Daypart struct {
	DayPartID int    `json:"dayPartId"`
	Name      string `json:"name"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	IsAlways  int    `json:"isAlways"`
	IsCustom  int    `json:"isCustom"`
}

func (d *Daypart) Validate() error {
	if d.DayPartID == 0 {
		return fmt.Errorf("daypart entry missing dayPartId")
	}
	if d.Name == "" {
		return fmt.Errorf("daypart %d missing name", d.DayPartID)
	}
	return nil
}

// Action is an interactive-control action attached to a layout or region.
type Action struct {
	ActionID    int    `json:"actionId"`
	OwnerID     int    `json:"ownerId,omitempty"`
	TriggerType string `json:"triggerType,omitempty"`
	TriggerCode string `json:"triggerCode,omitempty"`
	ActionType  string `json:"actionType,omitempty"`
	Source      string `json:"source,omitempty"`
	SourceID    int    `json:"sourceId,omitempty"`
	Target      string `json:"target,omitempty"`
	TargetID    int    `json:"targetId,omitempty"`
}

func (a *Action) Validate() error {
	if a.ActionID == 0 {
		return fmt.Errorf("action entry missing actionId")
	}
	return nil
}
