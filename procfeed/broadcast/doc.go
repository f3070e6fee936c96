// Package broadcast fans newly observed process entries out to any number of
// independent subscribers.
//
// Every subscriber owns a bounded ring. Publish never blocks: when a ring is
// full its oldest undelivered entry is discarded and the subscriber's next
// read returns a *LagError carrying the number of entries it missed, after
// which delivery resumes from the oldest retained entry.
package broadcast
