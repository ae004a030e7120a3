//go:build linux

package notify

import (
	"fmt"
	"path/filepath"

	"github.com/godbus/dbus/v5"
)

const (
	appName       = "Prodverse"
	desktopEntry  = "prodverse"
	trackCategory = "x-prodverse.track"

	notifyDest  = "org.freedesktop.Notifications"
	notifyPath  = "/org/freedesktop/Notifications"
	notifyIface = "org.freedesktop.Notifications"
)

// Server capabilities that change what a track notification carries.
const (
	capBody       = "body"
	capIconStatic = "icon-static"
	capIconMulti  = "icon-multi"
)

type dbusNotifier struct {
	obj  dbus.BusObject
	caps capabilities
}

// capabilities is the set the notification server reports. A nil set means
// the server did not answer and everything is attempted.
type capabilities map[string]bool

func (c capabilities) has(name string) bool {
	return c == nil || c[name]
}

func (c capabilities) images() bool {
	return c.has(capIconStatic) || c.has(capIconMulti)
}

// New connects to the session bus. Without one it returns a notifier that
// drops everything, so callers never have to special-case headless runs.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nopNotifier{}, nil //nolint:nilerr // no session bus, notifications are optional
	}
	obj := conn.Object(notifyDest, notifyPath)
	return &dbusNotifier{obj: obj, caps: queryCapabilities(obj)}, nil
}

func queryCapabilities(obj dbus.BusObject) capabilities {
	var names []string
	if err := obj.Call(notifyIface+".GetCapabilities", 0).Store(&names); err != nil {
		return nil
	}
	caps := make(capabilities, len(names))
	for _, name := range names {
		caps[name] = true
	}
	return caps
}

// hints builds the freedesktop hint map for a notification.
func (n *dbusNotifier) hints(notif Notification) map[string]dbus.Variant {
	h := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant(desktopEntry),
		"category":      dbus.MakeVariant(trackCategory),
	}
	if n.caps.images() && filepath.IsAbs(notif.Icon) {
		h["image-path"] = dbus.MakeVariant(notif.Icon)
	}
	return h
}

func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	body := notif.Body
	if !n.caps.has(capBody) {
		body = ""
	}
	icon := notif.Icon
	if !n.caps.images() {
		icon = ""
	}

	var id uint32
	err := n.obj.Call(notifyIface+".Notify", 0,
		appName,
		notif.ReplacesID,
		icon,
		notif.Title,
		body,
		[]string{},
		n.hints(notif),
		notif.Timeout,
	).Store(&id)
	if err != nil {
		return 0, fmt.Errorf("notify: %w", err)
	}
	return id, nil
}

func (n *dbusNotifier) Close(id uint32) error {
	if err := n.obj.Call(notifyIface+".CloseNotification", 0, id).Err; err != nil {
		return fmt.Errorf("close notification %d: %w", id, err)
	}
	return nil
}
