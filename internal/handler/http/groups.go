// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
)

// Route group names.
const (
	GroupAuth      = "auth"
	GroupUsers     = "users"
	GroupExercises = "exercises"
	GroupRoutines  = "routines"
	GroupWorkouts  = "workouts"
	GroupProgress  = "progress"
)

// RouteGroups carries the collaborator handler of every mounted group. The
// groups are mounted with [chi.Mux.Mount], so a chi router sees paths
// relative to its prefix. A nil handler is mounted as a placeholder
// answering 501.
type RouteGroups struct {
	Auth      http.Handler
	Users     http.Handler
	Exercises http.Handler
	Routines  http.Handler
	Workouts  http.Handler
	Progress  http.Handler
}

func (g RouteGroups) handler(name string) http.Handler {
	switch name {
	case GroupAuth:
		return g.Auth
	case GroupUsers:
		return g.Users
	case GroupExercises:
		return g.Exercises
	case GroupRoutines:
		return g.Routines
	case GroupWorkouts:
		return g.Workouts
	case GroupProgress:
		return g.Progress
	default:
		return nil
	}
}

// groupSpec describes one mounted prefix.
type groupSpec struct {
	Name           string
	Prefix         string
	Description    string
	DatabaseBacked bool
}

// groupSpecs is the fixed route table of the gateway, in the order the
// /api descriptor lists it.
var groupSpecs = []groupSpec{
	{Name: GroupAuth, Prefix: "/api/auth", Description: "Authentication routes", DatabaseBacked: true},
	{Name: GroupUsers, Prefix: "/api/users", Description: "User management routes", DatabaseBacked: true},
	{Name: GroupExercises, Prefix: "/api/exercises", Description: "Exercise management routes", DatabaseBacked: true},
	{Name: GroupRoutines, Prefix: "/api/routines", Description: "Workout routine routes", DatabaseBacked: true},
	{Name: GroupWorkouts, Prefix: "/api/workouts", Description: "Workout logging routes", DatabaseBacked: true},
	{Name: GroupProgress, Prefix: "/api/progress", Description: "Progress tracking routes", DatabaseBacked: true},
}

// notImplemented is mounted for groups without a collaborator.
func notImplemented(name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, fmt.Errorf("%w: %s", ErrGroupNotImplemented, name))
	})
}

// requireDatabase fails fast with 503 while the database is not connected.
func (h *Handler) requireDatabase(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.database == nil || !h.database.Ready() {
			respondError(w, r, ErrDatabaseUnavailable)
			return
		}

		next.ServeHTTP(w, r)
	})
}
