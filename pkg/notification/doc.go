// Package notification defines the value types shared by the triage
// pipeline: the incoming Notification and the delivery Decision.
//
// A Notification carries only what the sender provided (app name, title,
// message and an optional timestamp). Decisions serialize to the exact
// wire strings "ALLOW" and "QUEUE".
package notification
