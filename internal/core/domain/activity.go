package domain

import "time"

// ActivityAction identifies the kind of event recorded in the activity trail.
type ActivityAction string

const (
	ActivityUserRegistered ActivityAction = "user_registered"
	ActivityUserLogin      ActivityAction = "user_login"
	ActivityUserModerated  ActivityAction = "user_moderated"
	ActivityProjectCreated ActivityAction = "project_created"
	ActivityBlockCreated   ActivityAction = "block_created"
)

// ActivityEvent is an audit-trail record written asynchronously by the
// activity dispatcher. Failures to persist it never fail the originating
// request.
type ActivityEvent struct {
	ActorID   string         `json:"actor_id" bson:"actor_id"`
	Action    ActivityAction `json:"action" bson:"action"`
	SubjectID string         `json:"subject_id,omitempty" bson:"subject_id,omitempty"`
	Detail    string         `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp time.Time      `json:"timestamp" bson:"timestamp"`
}
