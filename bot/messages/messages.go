// Package messages holds every user-facing reply string in one catalog so
// the bot's locale can be swapped wholesale instead of hunting down
// hardcoded text in handlers.
package messages

// Catalog is the set of reply templates used by the command handlers.
// Fields ending in Fmt are fmt.Sprintf templates; their verbs are part of
// the contract with the handlers that use them.
type Catalog struct {
	GuildOnly string
	AdminOnly string

	// Broadcasts
	DMAllResultFmt  string // sent count, failed count
	PollAnnounce    string
	PollDMFmt       string // message link
	PollResultFmt   string // sent count, failed count
	FFRoleNotSet    string
	FFRoleRequired  string
	FeedbackDMFmt   string // sender mention, guild name, message
	FeedbackSentFmt string // admin count

	// Settings
	ATeamSetFmt  string // role mention
	BTeamSetFmt  string // role mention
	FFRoleSetFmt string // role mention

	// Team transitions
	TeamRolesNotSet      string
	MissingBTeamRoleFmt  string // user mention
	MissingATeamRoleFmt  string // user mention
	PromotedFmt          string // user mention
	DemotedFmt           string // user mention
	PromoteFailedFmt     string // user mention, cause
	DemoteFailedFmt      string // user mention, cause
	AlreadyFFFmt         string // user mention
	FFGrantedFmt         string // user mention
	FFGrantFailedFmt     string // user mention, cause

	// Matches
	InvalidSchedule string
	NoMatches       string

	// Roster
	InvalidTeam       string
	TeamRoleNotSetFmt string // team selector
	NoTeamMembers     string
}

// Default returns the English catalog
func Default() *Catalog {
	return &Catalog{
		GuildOnly: "This command can only be used in a team server.",
		AdminOnly: "You need administrator permissions to use this command.",

		DMAllResultFmt:  "Sent messages to %d members. Failed to send to %d members.",
		PollAnnounce:    "A poll for a friendly has been made, react down!",
		PollDMFmt:       "A poll for the friendly has been made, here is the link: %s",
		PollResultFmt:   "Poll created and messaged to %d members. Failed to send to %d members.",
		FFRoleNotSet:    "The friendly finder role wasn't set. Use `/setffrole` to define it.",
		FFRoleRequired:  "You need the friendly finder role to do that.",
		FeedbackDMFmt:   "Feedback from %s in %s:\n%s",
		FeedbackSentFmt: "Feedback sent to %d admin(s).",

		ATeamSetFmt:  "Role %s set as A TEAM for this guild.",
		BTeamSetFmt:  "Role %s set as B TEAM for this guild.",
		FFRoleSetFmt: "Role %s set as Friendly Finder for this guild.",

		TeamRolesNotSet:     "A TEAM or B TEAM roles are not set for this guild.",
		MissingBTeamRoleFmt: "%s does not have the B TEAM role.",
		MissingATeamRoleFmt: "%s does not have the A TEAM role.",
		PromotedFmt:         "%s has been promoted to A TEAM, congrats! 👏",
		DemotedFmt:          "%s has been demoted to B TEAM, sad :(",
		PromoteFailedFmt:    "Failed to promote %s: %v",
		DemoteFailedFmt:     "Failed to demote %s: %v",
		AlreadyFFFmt:        "%s already has the Friendly Finder role.",
		FFGrantedFmt:        "%s has been given the Friendly Finder role.",
		FFGrantFailedFmt:    "Failed to give the Friendly Finder role to %s: %v",

		InvalidSchedule: "Invalid date or time format. Use DD/MM/YYYY and HH:MM.",
		NoMatches:       "No scheduled matches found.",

		InvalidTeam:       "Invalid team. Please use 'A' or 'B'.",
		TeamRoleNotSetFmt: "The %s team role has not been set.",
		NoTeamMembers:     "No members in this team.",
	}
}
