// Package wizard collects project answers interactively. Run drives an
// Asker through a fixed sequence of steps where the domain, architecture
// and framework steps can return ErrBack to revisit the previous question.
// Prompter is the terminal Asker: numbered menus over an io.Reader and
// io.Writer.
package wizard
