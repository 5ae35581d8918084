package auth

import (
	"context"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/projecthub/projecthub/internal/db/models"
)

// Reason explains which rule decided an evaluation.
type Reason string

// Evaluation rules in precedence order.
const (
	ReasonAdmin    Reason = "admin"
	ReasonOwner    Reason = "owner"
	ReasonOfficial Reason = "official"
	ReasonGrant    Reason = "grant"
	ReasonPublic   Reason = "public"
	ReasonDenied   Reason = "denied"
	ReasonError    Reason = "error"
)

// Decision is the outcome of Evaluate.
type Decision struct {
	Allowed bool                  `json:"allowed"`
	Reason  Reason                `json:"reason"`
	Action  string                `json:"action,omitempty"` // the action that matched
	Grant   *models.Authorization `json:"grant,omitempty"`
}

//nolint:gochecknoglobals
var decisions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "authorization_decisions_total",
		Help: "Number of authorization evaluations, differentiated by deciding rule.",
	},
	[]string{"reason"},
)

// Evaluate decides whether actor may perform any of actions on resource.
//
// Rules short-circuit in order: admin flag, ownership, official relation, a resolved grant for
// any action, a public permission named like any action. Persistence errors deny and are logged.
func (s *Service) Evaluate(ctx context.Context, actor Actor, resource Resource, actions ...string) Decision {
	d := s.evaluate(ctx, actor, resource, actions)

	decisions.WithLabelValues(string(d.Reason)).Inc()

	ev := log.Debug().Str("reason", string(d.Reason)).Bool("allowed", d.Allowed).Strs("actions", actions)
	if actor != nil {
		ev = ev.Uint64("actor", actor.ActorID())
	}

	if resource != nil {
		ev = ev.Stringer("resource", resource.ResourceRef())
	}

	ev.Msg("authorization evaluated")

	return d
}

func (s *Service) evaluate(ctx context.Context, actor Actor, resource Resource, actions []string) Decision {
	if actor == nil || resource == nil {
		return Decision{Reason: ReasonDenied}
	}

	actorID := actor.ActorID()

	switch {
	case actor.IsAdmin():
		return Decision{Allowed: true, Reason: ReasonAdmin}
	case resource.OwnedBy(actorID):
		return Decision{Allowed: true, Reason: ReasonOwner}
	case resource.IsOfficialFor(actorID):
		return Decision{Allowed: true, Reason: ReasonOfficial}
	}

	ref := resource.ResourceRef()

	for _, action := range actions {
		grant, ok, err := s.Resolve(ctx, actorID, ref, action)
		if err != nil {
			log.Error().Err(err).Uint64("actor", actorID).Stringer("resource", ref).Str("action", action).
				Msg("failed to resolve authorization")

			return Decision{Reason: ReasonError}
		}

		if ok {
			return Decision{Allowed: true, Reason: ReasonGrant, Action: action, Grant: grant}
		}
	}

	for _, action := range actions {
		public, err := s.isPublic(ctx, ref.Kind, action)
		if err != nil {
			log.Error().Err(err).Str("action", action).Msg("failed to check public permission")

			return Decision{Reason: ReasonError}
		}

		if public {
			return Decision{Allowed: true, Reason: ReasonPublic, Action: action}
		}
	}

	return Decision{Reason: ReasonDenied}
}

// Can reports whether actor may perform any of actions on resource.
func (s *Service) Can(ctx context.Context, actor Actor, resource Resource, actions ...string) bool {
	return s.Evaluate(ctx, actor, resource, actions...).Allowed
}

// AssertCan is Can returning an *AuthorizationError on denial.
func (s *Service) AssertCan(ctx context.Context, actor Actor, resource Resource, actions ...string) error {
	if s.Can(ctx, actor, resource, actions...) {
		return nil
	}

	return denied(actor, strings.Join(actions, "|"), describe(resource))
}

// isPublic reports whether a public permission named name applies to resources of kind.
func (s *Service) isPublic(ctx context.Context, kind models.ResourceKind, name string) (bool, error) {
	public, ok, gen := s.public.get(kind, name)
	if ok {
		return public, nil
	}

	var count int64

	err := s.conn(ctx).Model(&models.Permission{}).
		Where("name = ? AND public = ?", name, true).
		Where("(resource_class = ? OR resource_class = ? OR resource_class IS NULL)", "", kind).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	s.public.add(kind, name, count > 0, gen)

	return count > 0, nil
}

func denied(actor Actor, action, target string) *AuthorizationError {
	name := "anonymous"
	if actor != nil {
		name = actor.String()
	}

	return &AuthorizationError{Actor: name, Action: action, Resource: target}
}

func describe(resource Resource) string {
	if resource == nil {
		return "unknown resource"
	}

	return resource.ResourceRef().String()
}
