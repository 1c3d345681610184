package ntfs

import "testing"

func TestPathCacheResolvesNestedDirectory(t *testing.T) {
	cache := NewPathCache('C', DefaultMaxResolutionDepth)
	cache.AddParent(100, ParentLink{ParentIndex: RootDirectoryIndex, Name: "dir"})
	cache.AddParent(200, ParentLink{ParentIndex: 100, Name: "a.txt"})

	if got := cache.Resolve(200); got != `C:\dir\a.txt` {
		t.Fatalf("Resolve(200) = %q, want C:\\dir\\a.txt", got)
	}
	if got := cache.Resolve(100); got != `C:\dir` {
		t.Fatalf("Resolve(100) = %q, want C:\\dir", got)
	}
}

// A parent reference absent from the cache yields path = <LETTER>:\ + name.
func TestPathCacheUnknownParentAttachesAtRoot(t *testing.T) {
	cache := NewPathCache('D', DefaultMaxResolutionDepth)
	cache.AddParent(50, ParentLink{ParentIndex: 9999, Name: "orphan.txt"})

	if got := cache.Resolve(50); got != `D:\orphan.txt` {
		t.Fatalf("Resolve(50) = %q, want D:\\orphan.txt", got)
	}
}

// Descendants of an orphan still join their own name onto the fallback
// root path.
func TestPathCacheDescendantOfUnknownParentJoins(t *testing.T) {
	cache := NewPathCache('D', DefaultMaxResolutionDepth)
	cache.AddParent(50, ParentLink{ParentIndex: 9999, Name: "orphan"})
	cache.AddParent(51, ParentLink{ParentIndex: 50, Name: "child.txt"})

	if got := cache.Resolve(51); got != `D:\orphan\child.txt` {
		t.Fatalf("Resolve(51) = %q, want D:\\orphan\\child.txt", got)
	}
}

// A cycle in the parent chain (synthetic) is detected on the first revisit
// and every record on it resolves to the drive root.
func TestPathCacheCycleCollapsesToRoot(t *testing.T) {
	cache := NewPathCache('C', DefaultMaxResolutionDepth)
	cache.AddParent(10, ParentLink{ParentIndex: 20, Name: "a"})
	cache.AddParent(20, ParentLink{ParentIndex: 10, Name: "b"})

	if got := cache.Resolve(10); got != `C:\` {
		t.Fatalf("Resolve(10) = %q, want drive root", got)
	}
	if got := cache.Resolve(20); got != `C:\` {
		t.Fatalf("Resolve(20) = %q, want drive root", got)
	}
}

// Path resolution terminates for all inputs and never recurses past the
// depth guard. A long linear chain (not a cycle) exceeding the guard also
// collapses to root.
func TestPathCacheDeepChainCollapsesToRoot(t *testing.T) {
	cache := NewPathCache('C', DefaultMaxResolutionDepth)
	for i := uint64(1); i <= 150; i++ {
		parent := RootDirectoryIndex
		if i > 1 {
			parent = i - 1
		}
		cache.AddParent(i, ParentLink{ParentIndex: parent, Name: "d"})
	}

	if got := cache.Resolve(150); got != `C:\` {
		t.Fatalf("Resolve(150) = %q, want drive root", got)
	}
}

func TestPathCacheMemoizesAcrossCalls(t *testing.T) {
	cache := NewPathCache('C', DefaultMaxResolutionDepth)
	cache.AddParent(100, ParentLink{ParentIndex: RootDirectoryIndex, Name: "dir"})
	cache.AddParent(200, ParentLink{ParentIndex: 100, Name: "a.txt"})

	cache.Resolve(200)
	if cache.Get(100) != `C:\dir` {
		t.Fatalf("expected intermediate ancestor to be memoized during Resolve")
	}
}

func TestPathCacheGetReturnsRootWhenUnresolved(t *testing.T) {
	cache := NewPathCache('E', DefaultMaxResolutionDepth)
	if got := cache.Get(12345); got != `E:\` {
		t.Fatalf("Get on unresolved index = %q, want drive root", got)
	}
}
