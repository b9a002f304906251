// Package preview renders built fieldsets as standalone HTML documents so a
// component can be inspected without opening the design tool. Rendering is
// template driven and theme aware; callers usually feed it the output of
// fieldset.Builder together with the validation findings for the same
// component.
package preview
