// Package schedule holds the daily task schedule: the Task value, the
// interval conflict test, and the Store that keeps tasks free of overlaps.
//
// Intervals are half-open, [Start, End). A task ending at 09:00 and a task
// starting at 09:00 do not conflict.
//
// Key components:
//   - Task: one time-bounded entry of the day
//   - Overlaps: the pure conflict test between two tasks
//   - Store: owns the tasks and rejects any mutation that would overlap
//   - Notifier: fans conflict messages out to registered listeners
//   - IDGenerator: hands out task ids that are never reused
package schedule
