// Package availability answers whether a member can receive a task on a
// given date.
//
// A member is ineligible when the task's category is blocked, the date
// falls inside an exclusion period (endpoints inclusive), or the task's
// weight would push the member's current-week load strictly above their
// weekly cap. Preference never gates eligibility; it only affects scoring
// in the strategy package.
package availability
