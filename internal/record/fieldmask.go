package record

// FieldMask is a set of field-name paths over PackageRecord, controlling
// which fields a projection emits. An empty mask projects to a zero-value
// PackageRecord (callers at the RPC boundary may choose a non-empty
// default instead — see internal/rpcv1).
type FieldMask []string

// AllFields is the canonical mask naming every projectable field, used as
// the Lookup and Resolve RPC default.
var AllFields = FieldMask{
	"name", "pkgbase", "pkgver", "description", "url",
	"votes", "popularity",
	"submitted", "modified", "out_of_date",
	"maintainers", "groups", "keywords", "licenses", "architectures",
	"conflicts", "replaces",
	"provides", "depends", "makedepends", "checkdepends", "optdepends",
}

// Project returns a copy of src with only the fields named in the mask
// populated. Unknown paths are ignored. src is never mutated.
func (m FieldMask) Project(src *PackageRecord) PackageRecord {
	var out PackageRecord
	for _, field := range m {
		switch field {
		case "name":
			out.Name = src.Name
		case "pkgbase":
			out.Pkgbase = src.Pkgbase
		case "pkgver":
			out.Pkgver = src.Pkgver
		case "description":
			out.Description = src.Description
		case "url":
			out.URL = src.URL
		case "votes":
			out.Votes = src.Votes
		case "popularity":
			out.Popularity = src.Popularity
		case "submitted":
			out.Submitted = src.Submitted
		case "modified":
			out.Modified = src.Modified
		case "out_of_date":
			out.OutOfDate = src.OutOfDate
		case "maintainers":
			out.Maintainers = copyStrings(src.Maintainers)
		case "groups":
			out.Groups = copyStrings(src.Groups)
		case "keywords":
			out.Keywords = copyStrings(src.Keywords)
		case "licenses":
			out.Licenses = copyStrings(src.Licenses)
		case "architectures":
			out.Architectures = copyStrings(src.Architectures)
		case "conflicts":
			out.Conflicts = copyStrings(src.Conflicts)
		case "replaces":
			out.Replaces = copyStrings(src.Replaces)
		case "provides":
			out.Provides = copyStrings(src.Provides)
		case "depends":
			out.Depends = copyStrings(src.Depends)
		case "makedepends":
			out.MakeDepends = copyStrings(src.MakeDepends)
		case "checkdepends":
			out.CheckDepends = copyStrings(src.CheckDepends)
		case "optdepends":
			out.OptDepends = copyStrings(src.OptDepends)
		}
	}
	return out
}

// ProjectAll projects every record in srcs through m, preserving order.
func (m FieldMask) ProjectAll(srcs []*PackageRecord) []PackageRecord {
	out := make([]PackageRecord, len(srcs))
	for i, src := range srcs {
		out[i] = m.Project(src)
	}
	return out
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
