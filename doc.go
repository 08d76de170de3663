// Package mediaview lays out a media card: an attachment, a title, a
// description and an overlay icon inside a padded container.
//
// The layout is a single pass of closed-form arithmetic. The attachment sits at
// the top-left of the content box, capped at 90% of the available height. The
// title and description stack directly beneath it. The icon overlaps the
// attachment's bottom-right corner, centered vertically on the text stack.
//
// The engine never touches a UI toolkit. Hosts adapt their views to [Child]
// and call [Layout] (or [Engine.Layout]) from their own layout pass.
package mediaview
