package moead

import "fmt"

const (
	// TblGens is the name of the sql database table that contains one
	// summary row per generation (evaluation count, front size, ideal
	// point).
	TblGens = "moeadgens"
	// TblFront is the name of the sql database table that contains the
	// position and objective values of every front member at each
	// generation.
	TblFront = "moeadfront"
)

func (it *Iterator) initdb() {
	if it.Db == nil {
		return
	}

	s := "CREATE TABLE IF NOT EXISTS " + TblGens + " (gen INTEGER,neval INTEGER,frontsize INTEGER"
	s += it.dbsql("f", "define", it.ws.NumObj())
	s += ");"
	_, err := it.Db.Exec(s)
	panicif(err)

	s = "CREATE TABLE IF NOT EXISTS " + TblFront + " (gen INTEGER"
	s += it.dbsql("x", "define", len(it.start))
	s += it.dbsql("f", "define", it.ws.NumObj())
	s += ");"
	_, err = it.Db.Exec(s)
	panicif(err)
}

func (it *Iterator) dbsql(prefix, op string, n int) string {
	s := ""
	for i := 0; i < n; i++ {
		if op == "?" {
			s += ",?"
		} else if op == "define" {
			s += fmt.Sprintf(",%v%v REAL", prefix, i)
		} else if op == "name" {
			s += fmt.Sprintf(",%v%v", prefix, i)
		} else {
			panic("invalid db op " + op)
		}
	}
	return s
}

func (it *Iterator) updateDb(neval int) {
	if it.Db == nil {
		return
	}

	tx, err := it.Db.Begin()
	panicif(err)
	defer tx.Commit()

	front := it.arch.Snapshot()

	s1 := "INSERT INTO " + TblGens + " (gen,neval,frontsize" + it.dbsql("f", "name", it.ws.NumObj()) + ") VALUES (?,?,?" + it.dbsql("f", "?", it.ws.NumObj()) + ");"
	args := []interface{}{it.gen, neval, len(front)}
	args = append(args, vals2iface(it.pop.Ideal())...)
	_, err = tx.Exec(s1, args...)
	panicif(err)

	s2 := "INSERT INTO " + TblFront + " (gen" + it.dbsql("x", "name", len(it.start)) + it.dbsql("f", "name", it.ws.NumObj()) + ") VALUES (?" + it.dbsql("x", "?", len(it.start)) + it.dbsql("f", "?", it.ws.NumObj()) + ");"
	for _, p := range front {
		args := []interface{}{it.gen}
		args = append(args, vals2iface(p.Pos())...)
		args = append(args, vals2iface(p.Objs())...)
		_, err := tx.Exec(s2, args...)
		panicif(err)
	}
}

func vals2iface(vals []float64) []interface{} {
	iface := []interface{}{}
	for _, v := range vals {
		iface = append(iface, v)
	}
	return iface
}

func panicif(err error) {
	if err != nil {
		panic(err.Error())
	}
}
