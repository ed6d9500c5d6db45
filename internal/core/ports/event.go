package ports

// Collection names the record sets a subscriber can watch.
type Collection string

const (
	CollectionLeaveRequests Collection = "leaveRequests"
	CollectionOutingPasses  Collection = "outingPasses"
	CollectionMissingItems  Collection = "missingItems"
	CollectionUsers         Collection = "users"
	CollectionAttendance    Collection = "attendance"
)

// Subscription is the opaque handle returned by Subscribe. Func values are
// not comparable in Go, so removal works through the handle rather than by
// callback identity. The zero value is never issued.
type Subscription uint64

// ChangeNotifier fans out collection-change signals to registered
// subscribers. Callbacks carry no payload; subscribers re-read through the
// store. Delivery is synchronous and in registration order, and a failing
// subscriber must not prevent the remaining ones from running.
type ChangeNotifier interface {
	Subscribe(c Collection, fn func()) Subscription
	Unsubscribe(s Subscription)
	Notify(c Collection)
}
