package services

import (
	"errors"

	"squadbot/domain/entities"
)

// Role policy outcomes. The bot layer maps these to user-facing replies
// with errors.Is, so configuration gaps, missing preconditions and
// no-op grants each get their own message.
var (
	// ErrTeamRolesNotConfigured is returned when the A or B team role is unset
	ErrTeamRolesNotConfigured = errors.New("team roles not configured")

	// ErrFriendlyFinderNotConfigured is returned when the friendly finder role is unset
	ErrFriendlyFinderNotConfigured = errors.New("friendly finder role not configured")

	// ErrMissingBTeamRole is returned when a promotion target does not hold the B team role
	ErrMissingBTeamRole = errors.New("user does not hold the B team role")

	// ErrMissingATeamRole is returned when a demotion target does not hold the A team role
	ErrMissingATeamRole = errors.New("user does not hold the A team role")

	// ErrMissingFriendlyFinderRole is returned when the invoker lacks the friendly finder role
	ErrMissingFriendlyFinderRole = errors.New("user does not hold the friendly finder role")

	// ErrAlreadyFriendlyFinder is returned when the grant target already holds the role
	ErrAlreadyFriendlyFinder = errors.New("user already holds the friendly finder role")
)

// HasRole reports whether roleID is present among memberRoles
func HasRole(memberRoles []int64, roleID int64) bool {
	for _, r := range memberRoles {
		if r == roleID {
			return true
		}
	}
	return false
}

// CheckPromote decides whether a member may move from B team to A team.
// Both team roles must be configured and the member must currently hold
// the B team role. The caller performs the actual role mutations.
func CheckPromote(settings *entities.GuildSettings, memberRoles []int64) error {
	if !settings.HasTeamRoles() {
		return ErrTeamRolesNotConfigured
	}
	if !HasRole(memberRoles, *settings.BTeamRoleID) {
		return ErrMissingBTeamRole
	}
	return nil
}

// CheckDemote decides whether a member may move from A team to B team
func CheckDemote(settings *entities.GuildSettings, memberRoles []int64) error {
	if !settings.HasTeamRoles() {
		return ErrTeamRolesNotConfigured
	}
	if !HasRole(memberRoles, *settings.ATeamRoleID) {
		return ErrMissingATeamRole
	}
	return nil
}

// CheckFriendlyFinderAccess decides whether a member may invoke friendly
// finder actions. An unconfigured role denies access; the caller must tell
// the invoker to run the setup command first.
func CheckFriendlyFinderAccess(settings *entities.GuildSettings, memberRoles []int64) error {
	if !settings.HasFriendlyFinderRole() {
		return ErrFriendlyFinderNotConfigured
	}
	if !HasRole(memberRoles, *settings.FriendlyFinderRoleID) {
		return ErrMissingFriendlyFinderRole
	}
	return nil
}

// CheckFriendlyFinderGrant decides whether the friendly finder role may be
// granted to a member who does not already hold it
func CheckFriendlyFinderGrant(settings *entities.GuildSettings, memberRoles []int64) error {
	if !settings.HasFriendlyFinderRole() {
		return ErrFriendlyFinderNotConfigured
	}
	if HasRole(memberRoles, *settings.FriendlyFinderRoleID) {
		return ErrAlreadyFriendlyFinder
	}
	return nil
}
