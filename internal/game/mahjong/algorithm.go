package mahjong

import "sort"

// Division 一种拆分: 4组面子加1对雀头, 下标4为雀头
type Division struct {
	Packs [5]Pack
}

// Tiles 拆分展开后的所有牌
func (d *Division) Tiles() []Tile {
	var tiles []Tile
	for _, p := range d.Packs {
		tiles = append(tiles, p.Tiles()...)
	}
	return tiles
}

// divider 一次拆分过程中的工作状态
type divider struct {
	fixed     int
	work      Division
	divisions []Division
}

func (d *divider) add() {
	temp := d.work
	slots := temp.Packs[d.fixed:4]
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	for i := range d.divisions {
		if samePacks(d.divisions[i].Packs[d.fixed:4], slots) {
			return
		}
	}
	d.divisions = append(d.divisions, temp)
}

func samePacks(a, b []Pack) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// tail 4组面子已经确定, 剩余的牌须恰好是一对
func (d *divider) tail(tt *Table) bool {
	for _, t := range AllTiles {
		if tt[t] < 2 {
			continue
		}

		tt[t] -= 2
		if tt.Empty() {
			tt[t] += 2
			d.work.Packs[4] = MakePack(0, PackPair, t)
			d.add()
			return true
		}
		tt[t] += 2
	}
	return false
}

// recursively 递归拆分, 面子的eigen不减以避免重复
func (d *divider) recursively(tt *Table, step int, prevEigen int) bool {
	idx := step + d.fixed
	if idx == 4 {
		return d.tail(tt)
	}

	ret := false
	for _, t := range AllTiles {
		if tt[t] < 1 {
			continue
		}

		// 刻子
		if tt[t] > 2 {
			if eigen := Eigen(t, t, t); eigen > prevEigen {
				d.work.Packs[idx] = MakePack(0, PackPung, t)
				tt[t] -= 3
				if d.recursively(tt, step+1, eigen) {
					ret = true
				}
				tt[t] += 3
			}
		}

		// 顺子
		if t.IsNumberedSuit() && t.Rank() < 8 && tt[t+1] != 0 && tt[t+2] != 0 {
			if eigen := Eigen(t, t+1, t+2); eigen >= prevEigen {
				d.work.Packs[idx] = MakePack(0, PackChow, t+1)
				tt[t]--
				tt[t+1]--
				tt[t+2]--
				if d.recursively(tt, step+1, eigen) {
					ret = true
				}
				tt[t]++
				tt[t+1]++
				tt[t+2]++
			}
		}
	}
	return ret
}

// DivideWinHand 枚举和牌的所有拆分
//
// standing为立牌(含和牌张)的统计, fixed为副露, 副露固定占据前面的位置
func DivideWinHand(standing *Table, fixed []Pack) []Division {
	if !standing.HasPair() {
		return nil
	}

	tt := *standing
	d := &divider{fixed: len(fixed)}
	copy(d.work.Packs[:], fixed)
	d.recursively(&tt, 0, 0)
	return d.divisions
}

// DivideFrom 以已经固定的若干位置为起点继续拆分, 用于组合龙等特殊牌型
func DivideFrom(standing *Table, work Division, fixed int) []Division {
	tt := *standing
	d := &divider{fixed: fixed, work: work}
	d.recursively(&tt, 0, 0)
	return d.divisions
}
