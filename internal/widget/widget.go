// Package widget contains custom Fyne widgets.
package widget
