// Package access decides whether a requester may see a student's records.
// Each role has its own AccessPolicy; the ownership edges come from Edges.
package access

import (
	"context"

	"github.com/google/uuid"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/helpers/apperr"
	"schoolhub_backend/internals/metrics"
)

const deniedMessage = "access denied"

// Requester is the authenticated caller (users.id + role claim).
type Requester struct {
	UserID uuid.UUID
	Role   string
}

// Edges answers ownership questions against the entity store.
type Edges interface {
	// StudentIDForUser returns the student record owned by the user, if any.
	StudentIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error)
	// TeacherCoversStudent reports whether an active subject assignment of the
	// teacher targets an active class group containing the student.
	TeacherCoversStudent(ctx context.Context, userID, studentID uuid.UUID) (bool, error)
	// FamilyLinked reports whether a family with the user as primary or
	// secondary contact is linked to the student.
	FamilyLinked(ctx context.Context, userID, studentID uuid.UUID) (bool, error)
}

type AccessPolicy interface {
	CanView(ctx context.Context, r Requester, studentID uuid.UUID) (bool, error)
}

type adminPolicy struct{}

func (adminPolicy) CanView(context.Context, Requester, uuid.UUID) (bool, error) { return true, nil }

type teacherPolicy struct{ edges Edges }

func (p teacherPolicy) CanView(ctx context.Context, r Requester, studentID uuid.UUID) (bool, error) {
	return p.edges.TeacherCoversStudent(ctx, r.UserID, studentID)
}

type studentPolicy struct{ edges Edges }

func (p studentPolicy) CanView(ctx context.Context, r Requester, studentID uuid.UUID) (bool, error) {
	own, ok, err := p.edges.StudentIDForUser(ctx, r.UserID)
	if err != nil || !ok {
		return false, err
	}
	return own == studentID, nil
}

type familyPolicy struct{ edges Edges }

func (p familyPolicy) CanView(ctx context.Context, r Requester, studentID uuid.UUID) (bool, error) {
	return p.edges.FamilyLinked(ctx, r.UserID, studentID)
}

type denyPolicy struct{}

func (denyPolicy) CanView(context.Context, Requester, uuid.UUID) (bool, error) { return false, nil }

// PolicyFor picks the policy for a role. Unknown roles get a policy that
// always denies.
func PolicyFor(role string, edges Edges) AccessPolicy {
	switch role {
	case constants.RoleAdmin:
		return adminPolicy{}
	case constants.RoleTeacher:
		return teacherPolicy{edges: edges}
	case constants.RoleStudent:
		return studentPolicy{edges: edges}
	case constants.RoleFamily:
		return familyPolicy{edges: edges}
	default:
		return denyPolicy{}
	}
}

// Authorize returns nil when r may view the student and an apperr Forbidden
// otherwise. Store failures are returned as-is.
func Authorize(ctx context.Context, edges Edges, r Requester, studentID uuid.UUID) error {
	ok, err := PolicyFor(r.Role, edges).CanView(ctx, r, studentID)
	if err != nil {
		return err
	}
	if !ok {
		metrics.AccessDenied.WithLabelValues(roleLabel(r.Role)).Inc()
		return apperr.Forbidden(deniedMessage)
	}
	return nil
}

func roleLabel(role string) string {
	if constants.IsKnownRole(role) {
		return role
	}
	return "unknown"
}
