package rod

// LazyLoad exposes the scroll schedule for tests.
var LazyLoad = lazyLoad

// Scroll scripts evaluated by LazyLoad.
const (
	ScrollByJS  = scrollByJS
	ScrollTopJS = scrollTopJS
)
